// Package output names experiment files and hands them off to the operator.
package output

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	FilePrefix      = "fpdf2_giang_experiment_"
	FileExt         = ".pdf"
	TimestampLayout = "20060102_150405"
)

func FileName(now time.Time) string {
	return FilePrefix + now.Format(TimestampLayout) + FileExt
}

// TempPath places the experiment file in the platform temp directory.
func TempPath(now time.Time) string {
	return filepath.Join(os.TempDir(), FileName(now))
}

// PathIn places the experiment file in dir, or in the temp directory when
// dir is empty.
func PathIn(dir string, now time.Time) string {
	if dir == "" {
		return TempPath(now)
	}
	return filepath.Join(dir, FileName(now))
}

// ParseFileName extracts the run timestamp from an experiment file name.
func ParseFileName(name string) (time.Time, bool) {
	base := filepath.Base(name)
	if !strings.HasPrefix(base, FilePrefix) || !strings.HasSuffix(base, FileExt) {
		return time.Time{}, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(base, FilePrefix), FileExt)
	t, err := time.ParseInLocation(TimestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
