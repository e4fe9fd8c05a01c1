package response

import "reserva-api/internal/usecase/queries"

type TableResponse struct {
	ID        int64 `json:"id"`
	Capacity  int32 `json:"capacity"`
	Available bool  `json:"available"`
}

func FromTableView(view *queries.TableView) *TableResponse {
	return &TableResponse{
		ID:        view.ID,
		Capacity:  view.Capacity,
		Available: view.Available,
	}
}

func FromTableViews(views []*queries.TableView) []*TableResponse {
	out := make([]*TableResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromTableView(v))
	}
	return out
}

type ReconfigureTableResponse struct {
	ID       int64 `json:"id"`
	Capacity int32 `json:"capacity"`
}
