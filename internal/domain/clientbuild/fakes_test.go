package clientbuild

import "errors"

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(message string) {
	l.lines = append(l.lines, message)
}

type mapStore struct {
	values  map[string]string
	failKey string
}

func newMapStore() *mapStore {
	return &mapStore{values: map[string]string{}}
}

func (s *mapStore) Setenv(key, value string) error {
	if key == s.failKey {
		return errors.New("setenv refused")
	}
	s.values[key] = value
	return nil
}
