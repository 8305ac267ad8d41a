package dates

import (
	"errors"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnresolved means the phrase did not contain a recognizable date.
var ErrUnresolved = errors.New("unresolved date phrase")

// Service turns free-text date phrases from the caller ("next saturday",
// "march 3rd") into ISO dates.
type Service interface {
	Resolve(phrase string, ref time.Time) (string, error)
}

type service struct {
	parser *when.Parser
}

func NewService() Service {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)
	return &service{parser: parser}
}

func (s *service) Resolve(phrase string, ref time.Time) (string, error) {
	result, err := s.parser.Parse(phrase, ref)
	if err != nil || result == nil {
		return "", ErrUnresolved
	}
	return result.Time.Format("2006-01-02"), nil
}
