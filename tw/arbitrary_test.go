package tw

import "testing"

func TestArbitraryLengths(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, Styles)
	}{
		{
			name:  "pixel width used verbatim",
			input: "w-[200px]",
			validate: func(t *testing.T, s Styles) {
				if s.Width != 200 {
					t.Errorf("expected width=200, got %v", s.Width)
				}
			},
		},
		{
			name:  "rem height multiplied by 16",
			input: "h-[10rem]",
			validate: func(t *testing.T, s Styles) {
				if s.Height != 160 {
					t.Errorf("expected height=160, got %v", s.Height)
				}
			},
		},
		{
			name:  "percentage width",
			input: "w-[33%]",
			validate: func(t *testing.T, s Styles) {
				if !s.Width.IsPct() || s.Width.PctValue() != 33 {
					t.Errorf("expected 33%%, got %v", s.Width)
				}
			},
		},
		{
			name:  "bare number used verbatim",
			input: "w-[42]",
			validate: func(t *testing.T, s Styles) {
				if s.Width != 42 {
					t.Errorf("expected width=42, got %v", s.Width)
				}
			},
		},
		{
			name:  "arbitrary size sets both dimensions",
			input: "size-[3rem]",
			validate: func(t *testing.T, s Styles) {
				if s.Width != 48 || s.Height != 48 {
					t.Errorf("expected 48x48, got w=%v h=%v", s.Width, s.Height)
				}
			},
		},
		{
			name:  "arbitrary gap",
			input: "gap-[50%]",
			validate: func(t *testing.T, s Styles) {
				if !s.PadRow.IsPct() || s.PadRow.PctValue() != 50 {
					t.Errorf("expected 50%% row gap, got %v", s.PadRow)
				}
				if s.PadColumn != s.PadRow {
					t.Errorf("expected matching column gap, got %v", s.PadColumn)
				}
			},
		},
		{
			name:  "arbitrary padding on one edge",
			input: "pl-[7px]",
			validate: func(t *testing.T, s Styles) {
				if s.PadLeft != 7 {
					t.Errorf("expected left=7, got %v", s.PadLeft)
				}
			},
		},
		{
			name:  "malformed literal is ignored",
			input: "w-[abc]",
			validate: func(t *testing.T, s Styles) {
				if s.Width != SizeContent {
					t.Errorf("expected width untouched, got %v", s.Width)
				}
			},
		},
		{
			name:  "unterminated bracket is ignored",
			input: "w-[200px",
			validate: func(t *testing.T, s Styles) {
				if s.Width != SizeContent {
					t.Errorf("expected width untouched, got %v", s.Width)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			tt.validate(t, result)
		})
	}
}

func TestArbitraryColors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, Styles)
	}{
		{
			name:  "six digit background",
			input: "bg-[#505050]",
			validate: func(t *testing.T, s Styles) {
				if s.BgColor == nil || *s.BgColor != (Color{0x50, 0x50, 0x50}) {
					t.Errorf("expected #505050, got %v", s.BgColor)
				}
			},
		},
		{
			name:  "three digit shorthand expands by 17",
			input: "bg-[#abc]",
			validate: func(t *testing.T, s Styles) {
				want := Color{0xaa, 0xbb, 0xcc}
				if s.BgColor == nil || *s.BgColor != want {
					t.Errorf("expected %v, got %v", want, s.BgColor)
				}
			},
		},
		{
			name:  "text color requires hash",
			input: "text-[20px]",
			validate: func(t *testing.T, s Styles) {
				if s.TextColor != nil {
					t.Errorf("expected no text color, got %v", s.TextColor)
				}
			},
		},
		{
			name:  "arbitrary text color",
			input: "text-[#1da1f2]",
			validate: func(t *testing.T, s Styles) {
				want := Color{0x1d, 0xa1, 0xf2}
				if s.TextColor == nil || *s.TextColor != want {
					t.Errorf("expected %v, got %v", want, s.TextColor)
				}
			},
		},
		{
			name:  "arbitrary border color",
			input: "border-[#ff0000]",
			validate: func(t *testing.T, s Styles) {
				want := Color{255, 0, 0}
				if s.BorderColor == nil || *s.BorderColor != want {
					t.Errorf("expected %v, got %v", want, s.BorderColor)
				}
			},
		},
		{
			name:  "malformed hex falls back to black",
			input: "bg-[#zzz]",
			validate: func(t *testing.T, s Styles) {
				if s.BgColor == nil || *s.BgColor != (Color{0, 0, 0}) {
					t.Errorf("expected black fallback, got %v", s.BgColor)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.input)
			tt.validate(t, result)
		})
	}
}

func TestPaletteOverrides(t *testing.T) {
	SetPalette(map[string]Color{"brand-500": {0x1d, 0xa1, 0xf2}})
	defer SetPalette(nil)

	s := Parse("bg-brand-500")
	if s.BgColor == nil || *s.BgColor != (Color{0x1d, 0xa1, 0xf2}) {
		t.Errorf("expected registered brand color, got %v", s.BgColor)
	}

	// The builtin palette still resolves underneath the overrides.
	s = Parse("bg-blue-500")
	if s.BgColor == nil || *s.BgColor != (Color{59, 130, 246}) {
		t.Errorf("expected builtin blue-500, got %v", s.BgColor)
	}
}
