package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hirepilot/hirepilot/internal/client/intake"
)

// SetJobDescription reads a multi-line job description and keeps it for the
// next analysis run. The text is not validated here; non-emptiness is checked
// at submission time.
func (a *App) SetJobDescription(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Paste the job description:", a.out)
	if err != nil {
		return err
	}
	a.jobDescription = text
	if text == "" {
		fmt.Fprintln(a.out, "Job description cleared.")
	} else {
		fmt.Fprintf(a.out, "Job description set (%d characters).\n", len(text))
	}
	return nil
}

// Attach stages one or more resume files. With no arguments it prompts for a
// single path. Unsupported file types are rejected here, at the selection
// boundary, and never reach the working set.
func (a *App) Attach(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		path, err := getSimpleText(a.reader, "Enter resume file path", a.out)
		if err != nil {
			return err
		}
		if path == "" {
			return nil
		}
		paths = []string{path}
	}

	var firstErr error
	for _, path := range paths {
		f, err := intake.FromPath(path)
		if err != nil {
			if errors.Is(err, intake.ErrUnsupportedMediaType) {
				fmt.Fprintf(a.out, "Skipped %s: only PDF and DOCX resumes are accepted.\n", path)
			} else {
				fmt.Fprintf(a.out, "Skipped %s: %s\n", path, err)
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		a.intake.Add(f)
		fmt.Fprintf(a.out, "Attached %s (%d bytes).\n", f.Name, len(f.Data))
	}
	return firstErr
}

// Files prints the working set in insertion order.
func (a *App) Files(ctx context.Context) error {
	files := a.intake.List()
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No resumes attached.")
		return nil
	}
	for i, f := range files {
		fmt.Fprintf(a.out, "%2d. %s  %s  %d bytes\n", i+1, f.Name, f.MediaType, len(f.Data))
	}
	return nil
}

// Detach removes the first staged file with the given name. Prompts when the
// name is not passed as an argument.
func (a *App) Detach(ctx context.Context, name string) error {
	if name == "" {
		var err error
		name, err = getSimpleText(a.reader, "Enter file name to remove", a.out)
		if err != nil {
			return err
		}
	}
	if a.intake.Remove(name) {
		fmt.Fprintf(a.out, "Removed %s.\n", name)
	} else {
		fmt.Fprintf(a.out, "No attached file named %s.\n", name)
	}
	return nil
}

// ClearFiles empties the working set. The set is not cleared automatically
// after an analysis run; this is the explicit way to start over.
func (a *App) ClearFiles(ctx context.Context) {
	a.intake.Clear()
	fmt.Fprintln(a.out, "Working set cleared.")
}
