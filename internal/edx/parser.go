package edx

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hamzaanis/openedx-client/internal/edx/dto"
	"github.com/hamzaanis/openedx-client/internal/model"
)

// Parser turns raw platform payloads into domain models.
//
// The course home API serves the course-dates payload and the mobile
// API serves the video outline; both are plain JSON. The Parser
// deserializes them, applies the tolerant date policy, and computes
// local file paths from its configuration.
//
// Example usage:
//
//	parser := NewParser(pathConfig, fileConfig)
//
//	today := dateutil.StripTime(time.Now())
//	dates, err := parser.ParseCourseDates(payload, today)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, block := range dates.Blocks {
//	    fmt.Printf("%s: %s\n", block.Title, block.Status().Tag())
//	}
type Parser struct {
	pathConfig *model.PathConfig
	fileConfig *model.VideoFileConfig
}

// NewParser creates a new Parser with the given configuration.
//
// The pathConfig and fileConfig determine where downloaded course
// files are saved and how they are named.
func NewParser(pathCfg *model.PathConfig, fileCfg *model.VideoFileConfig) *Parser {
	return &Parser{
		pathConfig: pathCfg,
		fileConfig: fileCfg,
	}
}

// ParseCourseDates deserializes a course-dates payload.
//
// The reference day is normalized once here and shared by every block,
// so past/future classification is stable across the whole batch. Date
// strings that fail to parse degrade to the current moment instead of
// rejecting the record.
//
// Returns an error only when the payload itself is not valid JSON.
func (p *Parser) ParseCourseDates(data []byte, today time.Time) (*model.CourseDateModel, error) {
	var jsonDates dto.JSONCourseDates
	if err := json.Unmarshal(data, &jsonDates); err != nil {
		return nil, fmt.Errorf("failed to parse course dates payload: %w", err)
	}

	return jsonDates.ToModel(today), nil
}

// ParseVideoOutline deserializes a video-outline payload into a Course
// with computed download paths. Outline entries without any playable
// source are skipped.
func (p *Parser) ParseVideoOutline(data []byte) (*model.Course, error) {
	var jsonOutline dto.JSONVideoOutline
	if err := json.Unmarshal(data, &jsonOutline); err != nil {
		return nil, fmt.Errorf("failed to parse video outline payload: %w", err)
	}

	return jsonOutline.ToCourse(p.pathConfig, p.fileConfig), nil
}
