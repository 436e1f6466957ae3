package payrun

import "context"

// PayRunService owns the pay run lifecycle. Tenant and acting user come
// from JWT claims on the context.
type PayRunService interface {
	Preview(ctx context.Context, req PeriodRequest) (PreviewResponse, error)
	Create(ctx context.Context, req PeriodRequest) (PayRunResponse, error)
	Get(ctx context.Context, id string) (PayRunResponse, error)
	List(ctx context.Context, filter Filter) (ListPayRunResponse, error)
	UpdateLine(ctx context.Context, req UpdateLineRequest) (LineResponse, error)
	Submit(ctx context.Context, id string) (PayRunResponse, error)
	Approve(ctx context.Context, id string) (PayRunResponse, error)
	Finalise(ctx context.Context, id string) (PayRunResponse, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, id string) (filename string, csv []byte, err error)
	GetChanges(ctx context.Context, id string) ([]ChangeResponse, error)
}
