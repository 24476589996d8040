// Package edx talks to the Open edX platform APIs used by the client
// and converts their payloads into domain models.
//
// # Payloads
//
// Two payloads are consumed:
//
//   - the course-dates payload from the course home API, listing every
//     dated entry of a course plus the deadline-banner flags
//   - the video outline from the mobile API, listing each video's
//     renditions and source URLs
//
// The dto subpackage holds the raw JSON shapes; this package wires
// fetching, parsing and path computation together.
//
// # Tolerant dates
//
// A date string that fails to parse never rejects its record: the
// block's date degrades to the current moment and parsing continues.
// Classification here is best-effort, not transactional.
package edx
