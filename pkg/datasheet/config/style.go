package config

import "fmt"

// RGB is a color with 0-255 components.
type RGB [3]int

// String returns the color as "r,g,b".
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c[0], c[1], c[2])
}

func toRGB(v []int) (RGB, error) {
	var c RGB
	if len(v) != 3 {
		return c, fmt.Errorf("want 3 components, got %d", len(v))
	}
	for i, x := range v {
		if x < 0 || x > 255 {
			return c, fmt.Errorf("component %d out of range: %d", i, x)
		}
		c[i] = x
	}
	return c, nil
}

// Alignment is the horizontal alignment of table columns.
type Alignment byte

const (
	AlignLeft   Alignment = 'l'
	AlignCenter Alignment = 'c'
	AlignRight  Alignment = 'r'
)

// ParseAlignment maps a configuration value to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left", "l", "L":
		return AlignLeft, nil
	case "center", "c", "C":
		return AlignCenter, nil
	case "right", "r", "R":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("unsupported alignmentTabular %q (use left, center or right)", s)
}

// Style is the immutable document-wide styling passed to the composer and
// renderers. It is a value: copies never share state.
type Style struct {
	TextColor  RGB
	TitleColor RGB
	LineColor  RGB
	// Margin is the page margin in inches.
	Margin float64
	Align  Alignment

	Author     string
	Title      string
	Logo       string
	Disclaimer string
	Banner     string
	// TargetLabel is the header of the product-value column.
	TargetLabel string

	MaxSingleColumnRows int
	LongCellThreshold   int
}

// Style extracts the styling values. Call Validate first; invalid colors map
// to black.
func (c *Config) Style() Style {
	text, _ := toRGB(c.ColorText)
	title, _ := toRGB(c.ColorTabTitle)
	line, _ := toRGB(c.ColorTabLine)
	align, err := ParseAlignment(c.AlignmentTabular)
	if err != nil {
		align = AlignLeft
	}
	return Style{
		TextColor:           text,
		TitleColor:          title,
		LineColor:           line,
		Margin:              c.MarginSize,
		Align:               align,
		Author:              c.Author,
		Title:               c.Title,
		Logo:                c.Logo,
		Disclaimer:          c.Disclaimer,
		Banner:              c.BannerText,
		TargetLabel:         c.TargetLabel,
		MaxSingleColumnRows: c.MaxSingleColumnRows,
		LongCellThreshold:   c.LongCellThreshold,
	}
}
