package config

import (
	"time"
)

// Settings is the user configuration file.
type Settings struct {
	Theme     ThemeSettings     `yaml:"theme" toml:"theme"`
	Log       LogSettings       `yaml:"log" toml:"log"`
	Countdown CountdownSettings `yaml:"countdown" toml:"countdown"`
	Loader    LoaderSettings    `yaml:"loader" toml:"loader"`
	Burst     BurstSettings     `yaml:"burst" toml:"burst"`
	Carousel  CarouselSettings  `yaml:"carousel" toml:"carousel"`
	Dock      DockSettings      `yaml:"dock" toml:"dock"`
}

// ThemeSettings selects the colour theme.
type ThemeSettings struct {
	Name string `yaml:"name" toml:"name" validate:"theme_name"`
}

// LogSettings configures the log sink. File is required by the TUI and the
// assistant server since both own stdout.
type LogSettings struct {
	Level         string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File          string `yaml:"file" toml:"file"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
}

// CountdownSettings tunes the countdown widget.
type CountdownSettings struct {
	Interval        time.Duration `yaml:"interval" toml:"interval" validate:"gt=0"`
	UrgentThreshold time.Duration `yaml:"urgent_threshold" toml:"urgent_threshold" validate:"gte=0"`
}

// LoaderSettings tunes the multi-phase loader.
type LoaderSettings struct {
	StageDelay  time.Duration `yaml:"stage_delay" toml:"stage_delay" validate:"gt=0"`
	SettleDelay time.Duration `yaml:"settle_delay" toml:"settle_delay" validate:"gte=0"`
}

// BurstSettings tunes the particle burst buttons.
type BurstSettings struct {
	Particles int           `yaml:"particles" toml:"particles" validate:"min=1,max=64"`
	Window    time.Duration `yaml:"window" toml:"window" validate:"gt=0"`
	Jitter    float64       `yaml:"jitter" toml:"jitter" validate:"gte=0,lt=0.5"`
}

// CarouselSettings tunes the testimonial carousel.
type CarouselSettings struct {
	Interval     time.Duration `yaml:"interval" toml:"interval" validate:"gt=0"`
	PauseOnHover bool          `yaml:"pause_on_hover" toml:"pause_on_hover"`
}

// DockSettings tunes dock magnification.
type DockSettings struct {
	MaxScale  float64 `yaml:"max_scale" toml:"max_scale" validate:"gte=1,lte=4"`
	Threshold float64 `yaml:"threshold" toml:"threshold" validate:"gt=0"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Theme: ThemeSettings{Name: "default"},
		Log:   LogSettings{Level: "info", HumanReadable: true},
		Countdown: CountdownSettings{
			Interval:        time.Second,
			UrgentThreshold: 30 * time.Minute,
		},
		Loader: LoaderSettings{
			StageDelay:  1800 * time.Millisecond,
			SettleDelay: time.Second,
		},
		Burst: BurstSettings{
			Particles: 12,
			Window:    700 * time.Millisecond,
		},
		Carousel: CarouselSettings{
			Interval:     5 * time.Second,
			PauseOnHover: true,
		},
		Dock: DockSettings{
			MaxScale:  2,
			Threshold: 12,
		},
	}
}
