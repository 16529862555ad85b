package ui

import (
	"testing"

	"github.com/nconklindev/hitlisten/internal/report"
)

func TestStylesUseReportPalette(t *testing.T) {
	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Box border", BoxStyle.GetBorderTopForeground(), report.Accent},
		{"Title", TitleStyle.GetForeground(), report.Accent},
		{"Subtitle", SubtitleStyle.GetForeground(), report.Muted},
		{"Error", ErrorStyle.GetForeground(), report.Bad},
		{"Success", SuccessStyle.GetForeground(), report.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("color = %v, want %v", tt.got, tt.want)
			}
		})
	}
}
