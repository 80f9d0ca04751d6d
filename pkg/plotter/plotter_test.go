package plotter

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/sciplot/pkg/errors"
)

const tolerance = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNew(t *testing.T) {
	p, err := New("x.pdf", "latex,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if p.Style.Name != "latex" {
		t.Errorf("Style.Name = %q, want latex", p.Style.Name)
	}
	if p.Size.Name != "revtex" {
		t.Errorf("Size.Name = %q, want revtex", p.Size.Name)
	}
	if p.OutputPath != "x.pdf" {
		t.Errorf("OutputPath = %q, want x.pdf", p.OutputPath)
	}
	if p.Flag != "default" {
		t.Errorf("Flag = %q, want default", p.Flag)
	}
	if p.Config.FontSize != 8 || p.Config.TitleSize != 9 || p.Config.LineWidth != 0.4 {
		t.Errorf("Config = %+v", p.Config)
	}
}

func TestNewDefaults(t *testing.T) {
	p, err := New("x.pdf", "", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Style.Name != "latex" || p.Size.Name != "revtex" {
		t.Errorf("defaults = %q,%q, want latex,revtex", p.Style.Name, p.Size.Name)
	}
}

func TestNewFlagPassThrough(t *testing.T) {
	p, err := New("x.pdf", "matlab,revtex", "omit_legend")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Flag != "omit_legend" {
		t.Errorf("Flag = %q, want omit_legend", p.Flag)
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		code   errors.Code
	}{
		{"unknown style", "x.pdf", "bogus,revtex", errors.ErrCodeStyleNotFound},
		{"unknown size", "x.pdf", "latex,bogus", errors.ErrCodeSizeNotFound},
		{"no comma", "x.pdf", "latex", errors.ErrCodeInvalidFormat},
		{"too many commas", "x.pdf", "latex,revtex,extra", errors.ErrCodeInvalidFormat},
		{"empty output", "", "latex,revtex", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.output, tt.format, "")
			if err == nil {
				t.Fatal("New error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestNormalFigure(t *testing.T) {
	p, err := New("x.pdf", "latex,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	fig := p.NormalFigure()
	if !almostEqual(fig.Width(), 243.0/72.0) {
		t.Errorf("Width = %v, want %v", fig.Width(), 243.0/72.0)
	}
	if !almostEqual(fig.Height(), 2.0) {
		t.Errorf("Height = %v, want 2", fig.Height())
	}
	if p.Figure() != fig {
		t.Error("Figure() is not the figure just created")
	}
}

func TestWideFigureHeightOverride(t *testing.T) {
	p, err := New("x.pdf", "matlab,a0poster", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	fig := p.WideFigure(WithHeight(10))
	if !almostEqual(fig.Width(), 1400.0/72.0) {
		t.Errorf("Width = %v, want %v", fig.Width(), 1400.0/72.0)
	}
	if !almostEqual(fig.Height(), 10) {
		t.Errorf("Height = %v, want 10", fig.Height())
	}
}

func TestFigureReplacesCurrent(t *testing.T) {
	p, err := New("x.pdf", "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := p.NormalFigure()
	second := p.WideFigure()
	if p.Figure() == first {
		t.Error("current figure not replaced")
	}
	if p.Figure() != second {
		t.Error("current figure is not the wide figure")
	}
}

func TestNormalFigureSingleAxes(t *testing.T) {
	p, err := New("x.pdf", "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ax, err := p.NormalFigureSingleAxes()
	if err != nil {
		t.Fatalf("NormalFigureSingleAxes: %v", err)
	}
	if ax == nil {
		t.Fatal("axes is nil")
	}

	fig := p.Figure()
	if got := len(fig.Subplots()); got != 1 {
		t.Errorf("subplot count = %d, want 1", got)
	}
	if fig.Subplots()[0] != ax {
		t.Error("returned axes is not the figure's subplot")
	}
}

func TestAddSubplot(t *testing.T) {
	p, err := New("x.pdf", "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fig := p.NormalFigure()

	left, err := fig.AddSubplot(1, 2, 1)
	if err != nil {
		t.Fatalf("AddSubplot(1,2,1): %v", err)
	}
	right, err := fig.AddSubplot(1, 2, 2)
	if err != nil {
		t.Fatalf("AddSubplot(1,2,2): %v", err)
	}
	if left == right {
		t.Error("distinct cells returned the same subplot")
	}

	// Same cell returns the existing subplot.
	again, err := fig.AddSubplot(1, 2, 1)
	if err != nil {
		t.Fatalf("AddSubplot repeat: %v", err)
	}
	if again != left {
		t.Error("repeated AddSubplot returned a new subplot")
	}
}

func TestAddSubplotErrors(t *testing.T) {
	p, err := New("x.pdf", "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fig := p.NormalFigure()

	if _, err := fig.AddSubplot(0, 1, 1); !errors.Is(err, errors.ErrCodeInvalidSubplot) {
		t.Errorf("zero rows error = %v, want INVALID_SUBPLOT", err)
	}
	if _, err := fig.AddSubplot(1, 2, 3); !errors.Is(err, errors.ErrCodeInvalidSubplot) {
		t.Errorf("index out of range error = %v, want INVALID_SUBPLOT", err)
	}

	if _, err := fig.AddSubplot(1, 2, 1); err != nil {
		t.Fatalf("AddSubplot: %v", err)
	}
	if _, err := fig.AddSubplot(2, 2, 1); !errors.Is(err, errors.ErrCodeInvalidSubplot) {
		t.Errorf("grid mismatch error = %v, want INVALID_SUBPLOT", err)
	}
}

func TestSaveWithoutFigure(t *testing.T) {
	p, err := New(filepath.Join(t.TempDir(), "x.png"), "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := p.Save(); !errors.Is(err, errors.ErrCodeNoFigure) {
		t.Errorf("Save error = %v, want NO_FIGURE", err)
	}
}

func TestSavePNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	p, err := New(out, "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := p.NormalFigureSingleAxes(); err != nil {
		t.Fatalf("NormalFigureSingleAxes: %v", err)
	}
	if err := p.Save(WithDPI(150)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat %s: %v", out, err)
	}
	if info.Size() == 0 {
		t.Error("saved file is empty")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	pngMagic := []byte{0x89, 'P', 'N', 'G'}
	if len(data) < 4 || string(data[:4]) != string(pngMagic) {
		t.Errorf("file does not start with PNG magic: % x", data[:4])
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	p, err := New(filepath.Join(t.TempDir(), "x.bmp"), "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.NormalFigure()

	if err := p.Save(); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Save error = %v, want UNSUPPORTED", err)
	}
}

func TestSaveNoExtension(t *testing.T) {
	p, err := New(filepath.Join(t.TempDir(), "figure"), "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.NormalFigure()

	if err := p.Save(); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Save error = %v, want UNSUPPORTED", err)
	}
}

func TestWriteToFormats(t *testing.T) {
	p, err := New("x.pdf", "matlab,revtex", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fig := p.NormalFigure()
	if _, err := fig.AddSubplot(1, 1, 1); err != nil {
		t.Fatalf("AddSubplot: %v", err)
	}

	for _, format := range []string{"png", "svg", "eps"} {
		t.Run(format, func(t *testing.T) {
			var buf writeCounter
			if err := fig.WriteTo(&buf, format, 96); err != nil {
				t.Fatalf("WriteTo(%s): %v", format, err)
			}
			if buf.n == 0 {
				t.Errorf("WriteTo(%s) wrote nothing", format)
			}
		})
	}
}

type writeCounter struct{ n int }

func (w *writeCounter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
