package util

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractTarGz extracts tar.gz archive to dstDir preserving file modes.
func ExtractTarGz(archivePath string, dstDir string) error {
	archive, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("error opening %s: %s", archivePath, err)
	}
	defer archive.Close()

	uncompressedStream, err := gzip.NewReader(archive)
	if err != nil {
		return fmt.Errorf("error reading %s: %s", archivePath, err)
	}
	defer uncompressedStream.Close()

	tarReader := tar.NewReader(uncompressedStream)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		// Guard against path traversal in archive entries.
		entryPath := filepath.Join(dstDir, filepath.Clean(header.Name))
		if !strings.HasPrefix(entryPath, filepath.Clean(dstDir)+string(os.PathSeparator)) &&
			entryPath != filepath.Clean(dstDir) {
			return fmt.Errorf("illegal path in archive: %s", header.Name)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(entryPath, header.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		case tar.TypeReg:
			// Some archives have strange order of objects,
			// so we check that the parent directory exists before
			// creating a file.
			if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
				return err
			}
			outFile, err := os.OpenFile(entryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
				header.FileInfo().Mode().Perm())
			if err != nil {
				return err
			}
			if _, err := io.Copy(outFile, tarReader); err != nil {
				outFile.Close()
				return err
			}
			outFile.Close()
		default:
			return fmt.Errorf("unknown type: %b in %s", header.Typeflag, header.Name)
		}
	}

	return nil
}
