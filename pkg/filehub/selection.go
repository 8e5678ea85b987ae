package filehub

import "sync"

// selectionSaver writes the remembered selection off the UI goroutine.
// Writes never overlap, and ids stored while a write runs collapse into the latest one.
type selectionSaver struct {
	apiURL string

	mu         sync.Mutex
	pending    string
	hasPending bool
	running    bool
	wg         sync.WaitGroup
}

func (s *selectionSaver) store(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending, s.hasPending = id, true
	if s.running {
		return
	}
	s.running = true
	s.wg.Add(1)
	go s.run()
}

func (s *selectionSaver) run() {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		if !s.hasPending {
			s.running = false
			s.mu.Unlock()
			return
		}
		id := s.pending
		s.hasPending = false
		s.mu.Unlock()
		saveSelectedFileID(s.apiURL, id)
	}
}

// wait blocks until every stored id is written.
func (s *selectionSaver) wait() {
	s.wg.Wait()
}
