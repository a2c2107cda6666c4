package config

// defaultFile is the baseline configuration written out on first start.
func defaultFile() *File {
	style := func(w, h, icon, text float64, bg string) StyleConfig {
		return StyleConfig{
			Width:    w,
			Height:   h,
			IconSize: icon,
			TextSize: text,
			BgColor:  bg,
			FgColor:  "#ffffff",
		}
	}

	return &File{
		TimeoutMS: 1200,
		Window: WindowConfig{
			Monitor:  0,
			Position: [2]float64{500, 500},
			Size:     [2]float64{800, 120},
		},
		Web: WebConfig{
			Port: 8766,
		},
		Styles: map[string]StyleConfig{
			"normal":      style(90, 90, 0, 20, "#1e1e30"),
			"numeric":     style(90, 90, 0, 24, "#2e2e2e"),
			"modifier":    style(120, 90, 25, 18, "#32283c"),
			"editor":      style(90, 90, 18, 22, "#3f2e2e"),
			"navigation":  style(90, 90, 20, 22, "#2e3f2e"),
			"scrollable":  style(90, 90, 20, 22, "#2e3f2e"),
			"symbol":      style(90, 90, 20, 24, "#3c2e2e"),
			"escape":      style(90, 90, 20, 22, "#aa1111"),
			"unknown":     style(90, 90, 14, 22, "#555555"),
			"function":    style(90, 90, 14, 22, "#001155"),
			"altfunction": style(90, 90, 14, 22, "#004488"),
			"mouse":       style(90, 90, 0, 24, "#801155"),
			"space":       style(260, 90, 20, 28, "#888888"),
		},
	}
}
