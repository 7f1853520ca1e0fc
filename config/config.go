package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every scene draws on.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// SequenceConfig describes where the frame sequence lives
type SequenceConfig struct {
	Dir         string // Directory holding the frames
	Pattern     string // File name template, indexed from 0
	Count       int    // Number of frames
	Concurrency int    // Outstanding fetches; 0 sizes from CPU count
}

// SpringConfig tunes the smoothing of frame progress
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	RestDelta float64 // Both distance and speed below this count as settled
}

// ScrollConfig contains the virtual document geometry and scroll steps
type ScrollConfig struct {
	Screens           float64 // Height of the sticky region in viewport heights
	WheelStep         float64 // Logical pixels per wheel notch
	LineStep          float64 // Logical pixels per arrow key press
	PageFraction      float64 // Share of the viewport moved by page keys
	RepeatDelay       int     // Ticks before a held key starts repeating
	RepeatInterval    int     // Ticks between repeats
	ScrolledThreshold float64 // Progress past which the hint is gone for good
}

// SurfaceConfig contains frame surface layering
type SurfaceConfig struct {
	SettleDelay   time.Duration // Wait after an orientation flip before re-measuring
	ScrimAlpha    float64       // Black film over the frames
	VignetteAlpha float64       // Edge darkness
	VignetteSize  float64       // Edge band width in logical pixels
}

// OverlayConfig contains scene overlay layout
type OverlayConfig struct {
	ScenesFile       string // Optional YAML override; empty uses the embedded scenes
	CompactWidth     float64
	Padding          float64
	CompactPadding   float64
	TitleSize        float64
	CompactTitleSize float64
	SubtitleSize     float64
	SubtitleMaxWidth float64
	IconSize         float64
	IconPadding      float64
	IconGap          float64
	TitleGap         float64
	DividerWidth     float64
	DividerCompact   float64
	DividerHeight    float64
	DividerGap       float64
	LineSpacing      float64 // Multiplier on font size
}

// LoadingConfig contains the loading screen layout
type LoadingConfig struct {
	Brand      string
	Label      string
	BrandSize  float64
	LabelSize  float64
	BarWidth   float64
	BarHeight  float64
	BarGap     float64
	TweenTicks float32 // Ticks the bar takes to catch up with a new percentage
}

// HintConfig contains the scroll hint layout and animation
type HintConfig struct {
	Text         string
	TextSize     float64
	IconSize     float64
	BottomMargin float64
	BobDistance  float32
	PeriodTicks  float32
	LineMin      float32
	LineMax      float32
	Alpha        float64
}

// SectionsConfig contains the static content after the sticky region
type SectionsConfig struct {
	Brand       string
	Tagline     string
	Variants    []Variant
	Disclaimer  string
	BookTitle   string
	BookAccent  string
	BookText    string
	BookActions []string
	FooterLinks []string
	Copyright   string
	FooterNote  string

	// Logical heights of the three sections
	PricingHeight float64
	BookingHeight float64
	FooterHeight  float64
}

// Height is the combined height of every section.
func (s SectionsConfig) Height() float64 {
	return s.PricingHeight + s.BookingHeight + s.FooterHeight
}

// Variant is one pricing card
type Variant struct {
	Name     string
	Price    string
	Stripe   string // Hex colour of the card's top stripe
	Features []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay    bool // Draw progress, frame and load stats
	Fullscreen bool // Start fullscreen
}

// Global configuration instances
var C *Config
var Sequence SequenceConfig
var Spring SpringConfig
var Scroll ScrollConfig
var Surface SurfaceConfig
var Overlay OverlayConfig
var Loading LoadingConfig
var Hint HintConfig
var Sections SectionsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "TVS Ronin",
	}

	Sequence = SequenceConfig{
		Dir:     "sequence",
		Pattern: "frame_%d.jpg",
		Count:   168,
	}

	// stiffness 100, damping 30, mass 1: overdamped, no overshoot
	Spring = SpringConfig{
		Stiffness: 100,
		Damping:   30,
		Mass:      1,
		RestDelta: 0.001,
	}

	Scroll = ScrollConfig{
		Screens:           5,
		WheelStep:         100,
		LineStep:          40,
		PageFraction:      0.9,
		RepeatDelay:       20,
		RepeatInterval:    3,
		ScrolledThreshold: 0.01,
	}

	Surface = SurfaceConfig{
		SettleDelay:   150 * time.Millisecond,
		ScrimAlpha:    0.35,
		VignetteAlpha: 0.7,
		VignetteSize:  120,
	}

	Overlay = OverlayConfig{
		CompactWidth:     768,
		Padding:          80,
		CompactPadding:   32,
		TitleSize:        96,
		CompactTitleSize: 48,
		SubtitleSize:     22,
		SubtitleMaxWidth: 672,
		IconSize:         32,
		IconPadding:      12,
		IconGap:          20,
		TitleGap:         16,
		DividerWidth:     112,
		DividerCompact:   64,
		DividerHeight:    4,
		DividerGap:       20,
		LineSpacing:      0.9,
	}

	Loading = LoadingConfig{
		Brand:      "TVS RONIN",
		Label:      "LOADING EXPERIENCE",
		BrandSize:  64,
		LabelSize:  12,
		BarWidth:   288,
		BarHeight:  4,
		BarGap:     32,
		TweenTicks: 18, // ~0.3s at 60fps
	}

	Hint = HintConfig{
		Text:         "SCROLL TO IGNITE",
		TextSize:     12,
		IconSize:     32,
		BottomMargin: 40,
		BobDistance:  10,
		PeriodTicks:  90, // 1.5s at 60fps
		LineMin:      12,
		LineMax:      40,
		Alpha:        0.7,
	}

	Sections = SectionsConfig{
		Brand:   "TVS RONIN",
		Tagline: "Live the Unscripted Life",
		Variants: []Variant{
			{
				Name:     "Single Tone",
				Price:    "₹ 1,49,000*",
				Stripe:   "#1f2937",
				Features: []string{"Single Channel ABS", "Urban Mode", "Rain Mode", "LED Headlamp"},
			},
			{
				Name:     "Dual Tone",
				Price:    "₹ 1,56,700*",
				Stripe:   "#7f1d1d",
				Features: []string{"Dual Channel ABS", "Golden USD Forks", "All LED Lamps", "SmartXonnect"},
			},
			{
				Name:     "Triple Tone",
				Price:    "₹ 1,68,750*",
				Stripe:   "#ca8a04",
				Features: []string{"Tri-Color Graphics", "Adjustable Levers", "Diamond Cut Alloys", "Voice Assist"},
			},
		},
		Disclaimer:  "*Ex-showroom price. Prices may vary by state.",
		BookTitle:   "UNSCRIPTED",
		BookAccent:  "OWNERSHIP",
		BookText:    "The streets are waiting. Claim your territory with the TVS Ronin today.",
		BookActions: []string{"Book Now", "Book Test Ride"},
		FooterLinks: []string{"Specifications", "Gallery", "Accessories", "Support"},
		Copyright:   "TVS Motor Company. All rights reserved.",
		FooterNote:  "Designed for the Modern Urbanite.",

		PricingHeight: 760,
		BookingHeight: 640,
		FooterHeight:  200,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:    false,
		Fullscreen: false,
	}
}
