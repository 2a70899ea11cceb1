package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/openhire/job-board-api/internal/dtos"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/tmc/langchaingo/llms"
	"gorm.io/gorm"
)

var (
	ErrJobPostingNotFound = errors.New("job posting not found")
	ErrCompanyNotFound    = errors.New("associated company not found")
)

// sectionHeaders is the literal marker sequence the structured prompt
// instructs the model to emit. Parsing tolerates missing headers.
var sectionHeaders = []string{
	"Overview",
	"Responsibilities",
	"Requirements",
	"Qualifications",
	"Benefits",
	"Company Culture",
	"Location Information",
	"Compensation Information",
}

// DescriptionService owns the generation flow: resolve posting and
// company, render the prompt, call the LLM, and in synchronous mode
// persist the result. Streaming mode never persists.
type DescriptionService struct {
	LLM       *LLMService
	Postings  *JobPostingService
	Companies *CompanyService
}

func NewDescriptionService(llm *LLMService, postings *JobPostingService, companies *CompanyService) *DescriptionService {
	return &DescriptionService{
		LLM:       llm,
		Postings:  postings,
		Companies: companies,
	}
}

func (s *DescriptionService) resolve(id uint) (*models.JobPosting, *models.Company, error) {
	posting, err := s.Postings.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrJobPostingNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	company, err := s.Companies.Get(posting.CompanyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return posting, company, nil
}

// Generate is the synchronous mode: block for the full completion,
// persist it onto the posting, and return the response payload. The
// stored description is untouched when the upstream call fails.
func (s *DescriptionService) Generate(ctx context.Context, id uint, tools []string, structured bool) (*dtos.GenerateDescriptionResponse, error) {
	posting, company, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(posting, company, tools, structured)
	log.Printf("Generating description for job posting %d (%s)", posting.ID, posting.Title)

	text, err := s.LLM.Generate(ctx, prompt, generationOptions(structured)...)
	if err != nil {
		log.Printf("Description generation failed for job posting %d: %v", posting.ID, err)
		return nil, fmt.Errorf("generate description: %w", err)
	}
	text = strings.TrimSpace(text)

	if err := s.Postings.SaveDescription(posting, text); err != nil {
		return nil, err
	}

	resp := &dtos.GenerateDescriptionResponse{
		JobID:       posting.ID,
		Description: text,
		GeneratedAt: time.Now().UTC(),
	}
	if structured {
		resp.Sections = ParseSections(text)
	}
	return resp, nil
}

// GenerateStream is the streaming mode: chunks go to emit as the model
// produces them and nothing is persisted.
func (s *DescriptionService) GenerateStream(ctx context.Context, id uint, tools []string, structured bool, emit func(chunk []byte) error) error {
	posting, company, err := s.resolve(id)
	if err != nil {
		return err
	}

	prompt := BuildPrompt(posting, company, tools, structured)
	log.Printf("Streaming description for job posting %d (%s)", posting.ID, posting.Title)

	if err := s.LLM.GenerateStream(ctx, prompt, emit, generationOptions(structured)...); err != nil {
		log.Printf("Description streaming failed for job posting %d: %v", posting.ID, err)
		return fmt.Errorf("generate description: %w", err)
	}
	return nil
}

func generationOptions(structured bool) []llms.CallOption {
	opts := []llms.CallOption{llms.WithMaxTokens(300)}
	if structured {
		opts = append(opts,
			llms.WithTemperature(0.7),
			llms.WithFrequencyPenalty(0.2),
			llms.WithPresencePenalty(0.1),
		)
	}
	return opts
}

// BuildPrompt renders the generation prompt. The structured variant asks
// for the fixed section headers and forbids tools outside the list.
func BuildPrompt(posting *models.JobPosting, company *models.Company, tools []string, structured bool) string {
	toolsStr := strings.Join(tools, ", ")
	prompt := fmt.Sprintf(
		"Write a detailed job description for the position '%s' at the company '%s', "+
			"which operates in the '%s' industry. "+
			"The candidate should be skilled in the following tools: %s.",
		posting.Title, company.Name, company.Industry, toolsStr,
	)
	if !structured {
		return prompt
	}
	return prompt + fmt.Sprintf(
		"\n\nStructure the description with the following section headers, each on its own line, in this order: %s. "+
			"Under Responsibilities, Requirements, Qualifications and Benefits, write one item per line prefixed with '- '. "+
			"Never mention any tool that is not in this list: %s.",
		strings.Join(sectionHeaders, ", "), toolsStr,
	)
}

// ParseSections splits raw text on the literal section headers, in
// sequence, taking everything between consecutive found headers as the
// section body. A header the model did not reproduce leaves its field
// empty instead of failing.
func ParseSections(text string) *dtos.StructuredJobDescription {
	type span struct {
		header string
		start  int // body start, after the header
		end    int // body end, exclusive
	}

	var spans []span
	cursor := 0
	for _, header := range sectionHeaders {
		idx := strings.Index(text[cursor:], header)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		if len(spans) > 0 {
			spans[len(spans)-1].end = start
		}
		cursor = start + len(header)
		spans = append(spans, span{header: header, start: cursor, end: len(text)})
	}

	out := &dtos.StructuredJobDescription{}
	for _, sp := range spans {
		body := cleanSectionBody(text[sp.start:sp.end])
		switch sp.header {
		case "Overview":
			out.Overview = body
		case "Responsibilities":
			out.Responsibilities = splitItems(body)
		case "Requirements":
			out.Requirements = splitItems(body)
		case "Qualifications":
			out.Qualifications = splitItems(body)
		case "Benefits":
			out.Benefits = splitItems(body)
		case "Company Culture":
			out.CompanyCulture = body
		case "Location Information":
			out.LocationInfo = body
		case "Compensation Information":
			out.CompensationInfo = body
		}
	}
	return out
}

func cleanSectionBody(body string) string {
	body = strings.TrimLeft(body, ":*# \t")
	return strings.TrimSpace(body)
}

func splitItems(body string) []string {
	var items []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
