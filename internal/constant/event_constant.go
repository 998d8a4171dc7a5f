package constant

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// NATS subject for completed evaluations
	SubjectSessionEvaluated = "SESSION_EVALUATED"

	// watermill topic for pipeline audit records
	TopicPipelineRun = "pipeline.run"

	SessionIdPrefix = "UserInput_"
)

// IsSessionId reports whether id has the shape of an issued session id:
// the prefix followed by a uuid in its canonical form.
func IsSessionId(id string) bool {
	rest, ok := strings.CutPrefix(id, SessionIdPrefix)
	if !ok {
		return false
	}
	u, err := uuid.Parse(rest)
	return err == nil && u.String() == rest
}
