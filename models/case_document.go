package models

import (
	"fmt"
	"slices"
	"time"
)

// CaseDocument is file metadata only: the bytes live with the (excluded)
// storage provider.
type CaseDocument struct {
	Id           string
	CaseId       string
	UploadedBy   UserId
	AccessLevel  AccessLevel
	FileName     string
	MimeType     string
	FileSizeByte int64
	ScanStatus   ScanStatus
	CreatedAt    time.Time
}

type ScanStatus string

const (
	ScanPending  ScanStatus = "pending"
	ScanClean    ScanStatus = "clean"
	ScanInfected ScanStatus = "infected"
)

var ValidScanStatuses = []ScanStatus{ScanPending, ScanClean, ScanInfected}

func ValidateScanStatus(s string) (ScanStatus, error) {
	status := ScanStatus(s)
	if !slices.Contains(ValidScanStatuses, status) {
		return "", fmt.Errorf("invalid scan status: %s %w", s, BadParameterError)
	}
	return status, nil
}

type CreateCaseDocumentAttributes struct {
	CaseId       string
	AccessLevel  AccessLevel
	FileName     string
	MimeType     string
	FileSizeByte int64
}

func (attrs CreateCaseDocumentAttributes) Validate() error {
	if attrs.FileName == "" {
		return fmt.Errorf("file name is required %w", BadParameterError)
	}
	if attrs.FileSizeByte < 0 {
		return fmt.Errorf("negative file size %w", BadParameterError)
	}
	if !slices.Contains(ValidAccessLevels, attrs.AccessLevel) {
		return fmt.Errorf("invalid access level: %s %w", attrs.AccessLevel, BadParameterError)
	}
	return nil
}
