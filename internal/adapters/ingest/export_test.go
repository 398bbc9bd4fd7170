package ingest

// SetMaxBody overrides the request body and frame size limit.
func (s *Server) SetMaxBody(n int64) {
	s.maxBody = n
}
