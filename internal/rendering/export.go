package rendering

import (
	"context"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

// Surface is an opened display surface, such as a browser window.
// Display shows the markup, lets the host print it, and discards the surface
// once printing completes or is cancelled.
type Surface interface {
	Display(ctx context.Context, markup string) error
}

// SurfaceOpener acquires a new display surface.
type SurfaceOpener interface {
	Open(ctx context.Context) (Surface, error)
}

// SurfaceOpenerFunc adapts a function to SurfaceOpener.
type SurfaceOpenerFunc func(ctx context.Context) (Surface, error)

// Open calls f(ctx).
func (f SurfaceOpenerFunc) Open(ctx context.Context) (Surface, error) {
	return f(ctx)
}

// Exporter turns records into artifacts. The opener is only needed for the
// print format and may be nil.
type Exporter struct {
	opener SurfaceOpener
}

// NewExporter creates an Exporter.
func NewExporter(opener SurfaceOpener) *Exporter {
	return &Exporter{opener: opener}
}

// Export renders record in the requested format. It never modifies record.
// JSON and text exports cannot fail for a normalized record; the print export
// fails with a *CapabilityError when no display surface can be acquired.
func (e *Exporter) Export(ctx context.Context, record types.ResumeRecord, format Format, baseFileName string) (*Artifact, error) {
	switch format {
	case FormatJSON:
		content, err := RenderJSON(record)
		if err != nil {
			return nil, err
		}
		return &Artifact{
			Format:   format,
			Content:  content,
			FileName: format.FileName(baseFileName),
			MIMEType: format.MIMEType(),
		}, nil

	case FormatText:
		return &Artifact{
			Format:   format,
			Content:  []byte(RenderText(record)),
			FileName: format.FileName(baseFileName),
			MIMEType: format.MIMEType(),
		}, nil

	case FormatPrint:
		return e.print(ctx, record)

	default:
		return nil, &FormatError{Format: string(format)}
	}
}

func (e *Exporter) print(ctx context.Context, record types.ResumeRecord) (*Artifact, error) {
	if e.opener == nil {
		return nil, &CapabilityError{Message: "no display surface is available for printing"}
	}

	markup, err := RenderPrintHTML(record)
	if err != nil {
		return nil, err
	}

	surface, err := e.opener.Open(ctx)
	if err != nil {
		return nil, &CapabilityError{
			Message: "failed to open a display surface for printing",
			Cause:   err,
		}
	}

	if err := surface.Display(ctx, markup); err != nil {
		return nil, &CapabilityError{
			Message: "display surface failed while printing",
			Cause:   err,
		}
	}

	return &Artifact{
		Format:   FormatPrint,
		Content:  []byte(markup),
		MIMEType: FormatPrint.MIMEType(),
	}, nil
}
