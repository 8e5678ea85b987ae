// Package profiling writes CPU and heap profiles of a viewer session.
package profiling

import (
	"os"
	"runtime"
	"runtime/pprof"

	"go.uber.org/zap"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DoCPUProfiling starts a CPU profile into path and returns the func that stops it.
// Failures are logged and yield a no-op stop func.
func DoCPUProfiling(path string, logger *zap.Logger) (stop func()) {
	f, err := osCreate(path)
	if err != nil {
		logger.Error("could not create CPU profile", zap.String("path", path), zap.Error(err))
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logger.Error("could not start CPU profile", zap.Error(err))
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			logger.Error("could not close CPU profile", zap.Error(err))
		}
	}
}

// DoMemProfiling returns a func that writes a heap profile into path.
// It is meant to be deferred so the profile reflects the end of the session.
func DoMemProfiling(path string, logger *zap.Logger) (write func()) {
	return func() {
		f, err := osCreate(path)
		if err != nil {
			logger.Error("could not create memory profile", zap.String("path", path), zap.Error(err))
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			logger.Error("could not write memory profile", zap.Error(err))
		}
	}
}
