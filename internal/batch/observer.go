package batch

import (
	"time"
)

// Observer is notified about every realization. Implementations must be
// safe for concurrent use.
type Observer interface {
	Generated(ordinal, samples int, elapsed time.Duration)
	Written(ordinal int, elapsed time.Duration)
	Failed(ordinal int, stage Stage, err error)
}

// Observers fans notifications out to several observers.
func Observers(obs ...Observer) Observer {
	var list multiObserver
	for _, o := range obs {
		if o != nil {
			list = append(list, o)
		}
	}
	return list
}

type multiObserver []Observer

func (m multiObserver) Generated(ordinal, samples int, elapsed time.Duration) {
	for _, o := range m {
		o.Generated(ordinal, samples, elapsed)
	}
}

func (m multiObserver) Written(ordinal int, elapsed time.Duration) {
	for _, o := range m {
		o.Written(ordinal, elapsed)
	}
}

func (m multiObserver) Failed(ordinal int, stage Stage, err error) {
	for _, o := range m {
		o.Failed(ordinal, stage, err)
	}
}
