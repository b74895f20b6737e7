// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/user/pgmtool/pkg/transform"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for pgmtool.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Output directory prepended to bare output file names.
	OutputDir string `yaml:"output_dir"`

	// Drawing
	DrawValue int `yaml:"draw_value"`

	// Preview
	PreviewMaxDim int `yaml:"preview_max_dim"`

	// Kernels defines user convolution kernels by name. A config kernel
	// shadows a builtin preset of the same name.
	Kernels map[string]KernelConfig `yaml:"kernels"`
}

// KernelConfig represents a user-defined convolution kernel.
type KernelConfig struct {
	// Rows are the kernel weights, one row per slice, all the same length.
	Rows [][]float64 `yaml:"rows"`
	// Divisor rescales the convolution sum (0 means 1).
	Divisor float64 `yaml:"divisor"`
	// Bias offsets the rescaled sum, e.g. 128 to center edge responses.
	Bias float64 `yaml:"bias"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel:      "info",
		OutputDir:     "",
		DrawValue:     255,
		PreviewMaxDim: 0,
		Kernels:       nil,
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ResolveKernel looks up a kernel by name: config-defined kernels first,
// then the builtin presets. It returns the kernel together with its
// scaling function.
func (c Config) ResolveKernel(name string) (transform.Kernel, transform.ScaleFunc, error) {
	if kc, ok := c.Kernels[name]; ok {
		kernel, err := transform.NewKernel(kc.Rows)
		if err != nil {
			return transform.Kernel{}, nil, fmt.Errorf("kernel %q: %w", name, err)
		}
		return kernel, transform.LinearScale(kc.Divisor, kc.Bias), nil
	}

	if kernel, ok := transform.PresetKernel(name); ok {
		return kernel, transform.IdentityScale, nil
	}

	return transform.Kernel{}, nil, fmt.Errorf("unknown kernel %q (builtin: %s)", name, strings.Join(transform.PresetKernelNames(), ", "))
}
