package dto

import (
	"github.com/hamzaanis/openedx-client/internal/model"
)

// JSONVideoOutline represents the deserialized video-outline payload
// for one course.
type JSONVideoOutline struct {
	CourseID   string             `json:"course_id"`
	CourseOrg  string             `json:"course_org"`
	CourseName string             `json:"course_name"`
	Videos     []JSONVideoSummary `json:"videos"`
}

// JSONVideoSummary represents one video entry of the outline.
type JSONVideoSummary struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	Duration           float64                 `json:"duration"`
	VideoURL           string                  `json:"video_url"`
	VideoThumbnailURL  string                  `json:"video_thumbnail_url"`
	AllSources         []string                `json:"all_sources"`
	SupportedEncodings []string                `json:"supported_encodings"`
	EncodedVideos      map[string]JSONEncoding `json:"encoded_videos"`
}

// JSONEncoding is one rendition descriptor within encoded_videos.
type JSONEncoding struct {
	URL      string `json:"url"`
	FileSize int64  `json:"file_size"`
}

// ToCourse converts the outline to a model.Course with computed paths.
// Entries without any playable source are skipped.
func (jo *JSONVideoOutline) ToCourse(pathCfg *model.PathConfig, fileCfg *model.VideoFileConfig) *model.Course {
	course := model.NewCourse(jo.CourseID, jo.CourseOrg, jo.CourseName, pathCfg)

	for _, jv := range jo.Videos {
		if jv.VideoURL == "" && len(jv.AllSources) == 0 && len(jv.EncodedVideos) == 0 {
			continue
		}
		course.AddVideo(jv.ToVideoSummary(), fileCfg)
	}

	return course
}

// ToVideoSummary converts one outline entry to a model.VideoSummary.
// The video's number and local paths are computed when it is attached
// to its course.
func (jv *JSONVideoSummary) ToVideoSummary() *model.VideoSummary {
	encodings := make(map[string]model.VideoEncoding, len(jv.EncodedVideos))
	for name, je := range jv.EncodedVideos {
		encodings[name] = model.VideoEncoding{
			Name:     name,
			URL:      je.URL,
			FileSize: je.FileSize,
		}
	}

	return &model.VideoSummary{
		ID:                 jv.ID,
		Name:               jv.Name,
		Duration:           jv.Duration,
		VideoURL:           jv.VideoURL,
		AllSources:         jv.AllSources,
		SupportedEncodings: jv.SupportedEncodings,
		Encodings:          encodings,
		ThumbnailURL:       jv.VideoThumbnailURL,
	}
}
