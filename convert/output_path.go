package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"exc/config"
	"exc/state"
)

// buildOutputPath returns constructed output file path/name based on
// source location and destination directory. It takes into account whether
// to preserve source directory structure on the output, cleans up the name
// and if requested transliterates it.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	return filepath.Join(determineOutputDir(src, dst, env), buildOutputFileName(src, env))
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildOutputFileName(src string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg.Document.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + ".tex"
}
