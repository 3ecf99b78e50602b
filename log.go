package urock

import "github.com/sirupsen/logrus"

// newLogger returns a logrus.Logger configured the way the teacher's
// run.go configures its own pipeline logger: text formatter, Info
// level by default.
func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetVerbose raises the model's logger to Debug level, enabling the
// per-iteration residual logging gated by SolverConfig.Verbose.
func (m *Model) SetVerbose(verbose bool) {
	m.Solver.Verbose = verbose
	if verbose {
		m.Log.SetLevel(logrus.DebugLevel)
	} else {
		m.Log.SetLevel(logrus.InfoLevel)
	}
}
