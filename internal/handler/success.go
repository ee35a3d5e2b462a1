package handler

import "net/http"

// GetSuccess handles GET /success, the confirmation view reached after a
// booking. It shows the pending flash notice, if any.
func (s *Server) GetSuccess(w http.ResponseWriter, r *http.Request) {
	view := page{Title: "Booking Confirmed"}
	if n, ok := popFlash(w, r); ok {
		view.notify(n)
	}
	s.render(w, r, http.StatusOK, "success.html", view)
}
