package edx

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	edxhttp "github.com/hamzaanis/openedx-client/internal/http"
	"github.com/hamzaanis/openedx-client/internal/model"
)

// API paths served by the platform. Course identifiers are appended
// after escaping.
const (
	courseDatesPath  = "/api/course_home/v1/dates/"
	videoOutlinePath = "/api/mobile/v1/video_outlines/courses/"
)

// Service fetches course payloads from the platform API and converts
// them to domain models. It can also read previously saved payload
// files, which keeps the client usable offline.
//
// Example:
//
//	svc := edx.NewService("https://courses.example.org", client, parser)
//	dates, err := svc.FetchCourseDates(ctx, courseID, today)
type Service struct {
	baseURL string
	client  *edxhttp.Client
	parser  *Parser
}

// NewService creates a Service for one platform instance. The base URL
// must not include a trailing slash path beyond the host root.
func NewService(baseURL string, client *edxhttp.Client, parser *Parser) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		parser:  parser,
	}
}

// DatesURL returns the course-dates endpoint for a course.
func (s *Service) DatesURL(courseID string) string {
	return s.baseURL + courseDatesPath + url.PathEscape(courseID)
}

// VideoOutlineURL returns the video-outline endpoint for a course.
func (s *Service) VideoOutlineURL(courseID string) string {
	return s.baseURL + videoOutlinePath + url.PathEscape(courseID)
}

// FetchCourseDates retrieves and parses the course-dates payload for a
// course. The reference day for classification is supplied by the
// caller, normalized once per fetch.
func (s *Service) FetchCourseDates(ctx context.Context, courseID string, today time.Time) (*model.CourseDateModel, error) {
	data, err := s.client.Get(ctx, s.DatesURL(courseID))
	if err != nil {
		return nil, fmt.Errorf("could not fetch course dates for %s: %w", courseID, err)
	}

	return s.parser.ParseCourseDates(data, today)
}

// FetchVideoOutline retrieves and parses the video outline for a
// course.
func (s *Service) FetchVideoOutline(ctx context.Context, courseID string) (*model.Course, error) {
	data, err := s.client.Get(ctx, s.VideoOutlineURL(courseID))
	if err != nil {
		return nil, fmt.Errorf("could not fetch video outline for %s: %w", courseID, err)
	}

	return s.parser.ParseVideoOutline(data)
}

// LoadCourseDatesFile parses a course-dates payload saved to disk.
func (s *Service) LoadCourseDatesFile(path string, today time.Time) (*model.CourseDateModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return s.parser.ParseCourseDates(data, today)
}

// LoadVideoOutlineFile parses a video-outline payload saved to disk.
func (s *Service) LoadVideoOutlineFile(path string) (*model.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return s.parser.ParseVideoOutline(data)
}
