package files

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TableVisit is invoked once per tabular member of a source. The name is the
// source file name for plain CSVs and "archive.zip/member.csv" for archive
// members. Returning an error aborts the remaining members of that source.
type TableVisit func(name string, table *Table) error

// VisitTables opens src and calls fn for each tabular member it contains.
// A plain CSV yields exactly one call; a ZIP yields one call per contained
// .csv member, in archive order.
func (w *Walker) VisitTables(ctx context.Context, src Source, fn TableVisit) error {
	if src.Archive {
		return w.visitArchive(ctx, src, fn)
	}
	return w.visitCSV(src, fn)
}

func (w *Walker) visitCSV(src Source, fn TableVisit) error {
	f, err := os.Open(src.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src.Name, err)
	}
	defer f.Close()

	table, err := OpenTable(f)
	if err != nil {
		return err
	}
	return fn(src.Name, table)
}

func (w *Walker) visitArchive(ctx context.Context, src Source, fn TableVisit) error {
	zr, err := zip.OpenReader(src.Path)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", src.Name, err)
	}
	defer zr.Close()

	var members []*zip.File
	for _, member := range zr.File {
		if member.FileInfo().IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(member.Name), ".csv") {
			members = append(members, member)
		}
	}

	w.logger.Info("extracting archive",
		slog.String("archive", src.Name),
		slog.Int("csv_members", len(members)))

	for _, member := range members {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := src.Name + "/" + member.Name
		if err := w.visitMember(member, name, fn); err != nil {
			return err
		}
	}
	return nil
}

// visitMember extracts one archive member to a scratch file, visits it, and
// removes the scratch copy again. The remove is unconditional: a member that
// fails to parse must not leave its extraction behind. Extraction and parse
// failures are member-scoped: they are logged and the rest of the archive
// still gets processed. Only errors from fn itself propagate.
func (w *Walker) visitMember(member *zip.File, name string, fn TableVisit) error {
	rc, err := member.Open()
	if err != nil {
		w.logger.Warn("skipping unreadable archive member",
			slog.String("member", name),
			slog.String("error", err.Error()))
		return nil
	}
	defer rc.Close()

	scratch, err := os.CreateTemp("", "uidai-*-"+sanitizeMemberName(member.Name))
	if err != nil {
		return fmt.Errorf("failed to create scratch file for %s: %w", name, err)
	}
	defer func() {
		scratch.Close()
		os.Remove(scratch.Name())
	}()

	if _, err := io.Copy(scratch, rc); err != nil {
		w.logger.Warn("skipping archive member that failed to extract",
			slog.String("member", name),
			slog.String("error", err.Error()))
		return nil
	}
	if _, err := scratch.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind scratch file for %s: %w", name, err)
	}

	table, err := OpenTable(scratch)
	if err != nil {
		w.logger.Warn("skipping archive member with no usable table",
			slog.String("member", name),
			slog.String("error", err.Error()))
		return nil
	}
	return fn(name, table)
}

// sanitizeMemberName makes an archive member name safe for use in a temp-file
// pattern (no path separators).
func sanitizeMemberName(name string) string {
	base := filepath.Base(filepath.FromSlash(name))
	return strings.Map(func(r rune) rune {
		if r == os.PathSeparator || r == '/' || r == '*' {
			return '_'
		}
		return r
	}, base)
}
