package core

import (
	"errors"
	"fmt"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const DisplayWindow = "window"
const DisplayTerminal = "terminal"

const DefaultFontPath = "assets/font/Monogram-Extended.ttf"

type Properties struct {
	Display     string
	FontPath    string
	FontSize    float64
	FrameRate   int
	WindowTitle string
}

func DefaultProperties() Properties {
	return Properties{
		Display:     DisplayWindow,
		FontPath:    DefaultFontPath,
		FontSize:    120,
		FrameRate:   30,
		WindowTitle: "The Pong",
	}
}

// ReadProperties loads <dir>/properties/<env>.properties. A missing file keeps the defaults.
func ReadProperties(dir, env string) (Properties, error) {
	props := DefaultProperties()

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("DISPLAY", props.Display)
	v.SetDefault("FONT_PATH", props.FontPath)
	v.SetDefault("FONT_SIZE", props.FontSize)
	v.SetDefault("FRAME_RATE", props.FrameRate)
	v.SetDefault("WINDOW_TITLE", props.WindowTitle)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return props, fmt.Errorf("read %s properties: %w", env, err)
		}
	}

	fontSize, err := cast.ToFloat64E(v.Get("FONT_SIZE"))
	if err != nil {
		return props, fmt.Errorf("FONT_SIZE: %w", err)
	}
	frameRate, err := cast.ToIntE(v.Get("FRAME_RATE"))
	if err != nil {
		return props, fmt.Errorf("FRAME_RATE: %w", err)
	}

	props.Display = cast.ToString(v.Get("DISPLAY"))
	props.FontPath = cast.ToString(v.Get("FONT_PATH"))
	props.FontSize = fontSize
	props.FrameRate = frameRate
	props.WindowTitle = cast.ToString(v.Get("WINDOW_TITLE"))

	switch props.Display {
	case DisplayWindow, DisplayTerminal:
	default:
		return props, fmt.Errorf("unknown DISPLAY %q", props.Display)
	}
	if props.FrameRate <= 0 {
		return props, fmt.Errorf("FRAME_RATE must be positive, got %d", props.FrameRate)
	}

	return props, nil
}
