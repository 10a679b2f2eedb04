package artifacts

import (
	"path/filepath"

	"github.com/crytic/gsolc/logging"
	"github.com/crytic/gsolc/utils"
)

// WriteFailure records a single artifact which could not be persisted.
type WriteFailure struct {
	// Path is the file path the write was attempted at.
	Path string

	// Err is the error which prevented the write.
	Err error
}

// WriteResult summarizes artifact persistence for one run. Write failures are collected rather than surfaced as
// errors; they are reported at end of run and never affect exit status.
type WriteResult struct {
	// Written lists the file paths persisted successfully.
	Written []string

	// Failures lists the artifacts which could not be persisted.
	Failures []WriteFailure
}

// Writer persists artifacts into an output directory.
type Writer struct {
	// outputDirectory is the directory artifacts are written into.
	outputDirectory string

	// logger describes the Writer's log object
	logger *logging.Logger
}

// NewWriter returns a Writer persisting artifacts into the given directory, which is created on first use if it
// does not exist. An empty directory writes into the working directory.
func NewWriter(outputDirectory string) *Writer {
	return &Writer{
		outputDirectory: outputDirectory,
		logger:          logging.GlobalLogger.NewSubLogger("module", "artifacts"),
	}
}

// Write persists every artifact, one file per artifact, named <FileNameKey>.<Kind>. A failure writing one artifact
// is recorded and does not block writing the others.
func (w *Writer) Write(artifactList []Artifact) *WriteResult {
	result := &WriteResult{}
	for _, artifact := range artifactList {
		fileName := artifact.FileNameKey + "." + string(artifact.Kind)
		filePath := filepath.Join(w.outputDirectory, fileName)

		file, err := utils.CreateFile(w.outputDirectory, fileName)
		if err != nil {
			result.Failures = append(result.Failures, WriteFailure{Path: filePath, Err: err})
			continue
		}
		_, err = file.WriteString(artifact.Content)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			result.Failures = append(result.Failures, WriteFailure{Path: filePath, Err: err})
			continue
		}
		result.Written = append(result.Written, filePath)
	}
	return result
}

// ReportFailures logs every collected write failure. Failures are informational; they do not affect exit status.
func (w *Writer) ReportFailures(result *WriteResult) {
	for _, failure := range result.Failures {
		w.logger.Error("failed to write artifact at ", failure.Path, failure.Err)
	}
}
