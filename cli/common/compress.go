package common

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// WriteTarArchive writes all files from srcDirPath to the tar stream.
// srcDirPath itself is stored as rootName, so every entry path
// starts with rootName
func WriteTarArchive(srcDirPath string, rootName string, compressWriter io.Writer) error {
	tarWriter := tar.NewWriter(compressWriter)

	err := filepath.Walk(srcDirPath, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		tarHeader, err := tar.FileInfoHeader(fileInfo, "")
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(srcDirPath, filePath)
		if err != nil {
			return err
		}

		tarHeader.Name = path.Join(rootName, filepath.ToSlash(relPath))
		if fileInfo.IsDir() {
			tarHeader.Name += "/"
		}

		if err := tarWriter.WriteHeader(tarHeader); err != nil {
			return err
		}

		if fileInfo.Mode().IsRegular() {
			if err := writeFileToWriter(filePath, tarWriter); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		tarWriter.Close()
		return err
	}

	return tarWriter.Close()
}

// WriteTgzArchive creates TGZ archive of specified path.
// Archive root directory is named rootName.
// Existing file at destFilePath is overwritten
func WriteTgzArchive(srcDirPath string, destFilePath string, rootName string) error {
	destFile, err := os.Create(destFilePath)
	if err != nil {
		return fmt.Errorf("Failed to create result TGZ file %s: %s", destFilePath, err)
	}
	defer destFile.Close()

	gzipWriter := gzip.NewWriter(destFile)

	if err := WriteTarArchive(srcDirPath, rootName, gzipWriter); err != nil {
		gzipWriter.Close()
		return err
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("Failed to flush GZIP stream %s: %s", destFilePath, err)
	}

	if err := destFile.Close(); err != nil {
		return fmt.Errorf("Failed to close result TGZ file %s: %s", destFilePath, err)
	}

	return nil
}
