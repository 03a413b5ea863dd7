package services

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mdp/qrterminal/v3"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"qr-generator/internal/constants"
	apperrors "qr-generator/internal/errors"
)

// QRService provides QR code generation functionality
type QRService struct {
	logger *logrus.Logger
	now    func() time.Time
}

// NewQRService creates a new QR code service
func NewQRService(logger *logrus.Logger) *QRService {
	return &QRService{
		logger: logger,
		now:    time.Now,
	}
}

// Generate encodes text as a QR code and saves it as a PNG inside
// outputDir, returning the path of the written file.
func (s *QRService) Generate(text, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, constants.DirPermissions); err != nil {
		return "", &apperrors.GenerationError{Op: "create output directory", Path: outputDir, Err: err}
	}

	outPath := filepath.Join(outputDir, Filename(s.now()))
	s.logger.Debugf("Generating QR code for text: %s", text)

	// Medium recovery, 10px modules, default quiet zone
	png, err := qrcode.Encode(text, qrcode.Medium, constants.ModuleSize)
	if err != nil {
		return "", &apperrors.GenerationError{Op: "encode", Path: outPath, Err: err}
	}

	if err := writeFileAtomic(outPath, png); err != nil {
		return "", &apperrors.GenerationError{Op: "save", Path: outPath, Err: err}
	}

	s.logger.Debugf("Wrote %d bytes to %s", len(png), outPath)
	return outPath, nil
}

// RenderTerminal writes an ANSI rendering of the QR code for text to w
func (s *QRService) RenderTerminal(w io.Writer, text string) {
	qrterminal.GenerateWithConfig(text, qrterminal.Config{
		Level:     qrterminal.M,
		Writer:    w,
		BlackChar: qrterminal.BLACK,
		WhiteChar: qrterminal.WHITE,
		QuietZone: 2,
	})
}

// Filename returns the image name for a generation started at t
func Filename(t time.Time) string {
	return constants.FilenamePrefix + t.Format(constants.FilenameTimestamp) + constants.FilenameExtension
}

// writeFileAtomic writes data next to path and renames it into place,
// so a failed write never leaves a partial image behind
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
