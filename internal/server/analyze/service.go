package analyze

import (
	"context"
	"fmt"
	"sort"

	"github.com/hirepilot/hirepilot/internal/logging"
)

// Upload is one resume as received by the transport layer.
type Upload struct {
	Filename  string
	MediaType string
	Data      []byte
}

// CandidateReport is one analyzed resume: the display score and the HTML
// report fragment.
type CandidateReport struct {
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Report   string  `json:"report"`
}

type Service struct {
	generator ReportGenerator
	logger    logging.Logger
}

func NewService(generator ReportGenerator, logger logging.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger.With("component", "analyze"),
	}
}

// AnalyzeBatch processes every uploaded resume against the job description and
// returns the reports sorted best-first. A failure on one file never fails the
// batch: the file gets a zero score and an error note as its report.
func (s *Service) AnalyzeBatch(ctx context.Context, jobDescription string, uploads []Upload) []CandidateReport {
	reports := make([]CandidateReport, 0, len(uploads))

	for _, upload := range uploads {
		report, err := s.analyzeOne(ctx, jobDescription, upload)
		if err != nil {
			s.logger.Error(ctx, "resume analysis failed", "filename", upload.Filename, "error", err)
			reports = append(reports, CandidateReport{
				Filename: upload.Filename,
				Score:    0,
				Report:   fmt.Sprintf("<p>Error processing file: %s</p>", err),
			})
			continue
		}
		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Score > reports[j].Score
	})
	return reports
}

func (s *Service) analyzeOne(ctx context.Context, jobDescription string, upload Upload) (CandidateReport, error) {
	resumeText, err := ExtractText(upload.MediaType, upload.Data)
	if err != nil {
		return CandidateReport{}, err
	}

	markdownReport, err := s.generator.GenerateReport(ctx, jobDescription, resumeText)
	if err != nil {
		return CandidateReport{}, err
	}

	return CandidateReport{
		Filename: upload.Filename,
		Score:    ExtractScore(markdownReport),
		Report:   markdownToHTML(markdownReport),
	}, nil
}
