package cmd

import (
	"errors"
	"os"
	"strings"

	thrown "github.com/0chain/errors"
	"github.com/0chain/gosdk/core/sys"
	"github.com/gjutils/gjutil/model"
	"github.com/gjutils/gjutil/mount"
	"github.com/gjutils/gjutil/s3"
	"github.com/gjutils/gjutil/util"
	zErrors "github.com/gjutils/gjutil/zErrors"
	"github.com/spf13/viper"
)

var (
	ErrBadParsing      = errors.New("parsing error")
	ErrInvalidCopyTool = errors.New("invalid copy tool")
)

const envPrefix = "GJUTIL"

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", model.BackendGCS)
	v.SetDefault("s3.region", s3.DefaultRegion)
	v.SetDefault("mount.helper", mount.DefaultHelper)
	v.SetDefault("mount.implicit_dirs", false)
	v.SetDefault("mount.unmount_tools", unmountToolStrings(mount.DefaultUnmountTools))
	v.SetDefault("copy.tool", model.CopyToolGsutil)
	v.SetDefault("log.file", "gjutil.log")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfigFile reads file into an AppConfig on top of v. A missing file
// leaves every key at its default.
func loadConfigFile(v *viper.Viper, file string) (model.AppConfig, error) {
	_, err := sys.Files.Stat(file)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return model.AppConfig{}, err
		}
		return LoadConfig(v)
	}

	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return model.AppConfig{}, thrown.Throw(ErrBadParsing, err.Error())
	}

	return LoadConfig(v)
}

func LoadConfig(v *viper.Viper) (model.AppConfig, error) {
	var cfg model.AppConfig

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, thrown.Throw(ErrBadParsing, err.Error())
	}

	cfg.Backend = normalize(cfg.Backend)
	switch cfg.Backend {
	case model.BackendGCS, model.BackendS3:
	default:
		return cfg, zErrors.NewUnknownBackendError(cfg.Backend)
	}

	cfg.Copy.Tool = normalize(cfg.Copy.Tool)
	switch cfg.Copy.Tool {
	case model.CopyToolGsutil, model.CopyToolAPI:
	default:
		return cfg, thrown.Throw(ErrInvalidCopyTool, cfg.Copy.Tool)
	}

	return cfg, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func unmountToolStrings(tools []util.Command) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.String()
	}
	return out
}

// parseUnmountTools splits each entry on whitespace into a program and its
// arguments. Blank entries are skipped.
func parseUnmountTools(tools []string) []util.Command {
	var out []util.Command
	for _, t := range tools {
		fields := strings.Fields(t)
		if len(fields) == 0 {
			continue
		}
		out = append(out, util.Command{Program: fields[0], Args: fields[1:]})
	}
	return out
}
