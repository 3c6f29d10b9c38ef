package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_xpto_workflow/internal/adapter/http/handlers/mocks"
	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newServiceOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/service-orders", h.CreateServiceOrder)
	r.GET("/v1/service-orders/:id", h.GetServiceOrder)
	r.PATCH("/v1/service-orders/:id/receive", h.ReceiveServiceOrder)
	r.PATCH("/v1/service-orders/:id/diagnose", h.DiagnoseServiceOrder)
	r.PATCH("/v1/service-orders/:id/deliver", h.DeliverServiceOrder)
	r.PATCH("/v1/service-orders/:id/reject", h.RejectServiceOrder)
	r.PATCH("/v1/service-orders/:id/cancel", h.CancelServiceOrder)
	r.PATCH("/v1/service-orders/:id/status", h.UpdateServiceOrderStatus)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServiceOrderHandler_CreateServiceOrder(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)
		w := serve(r, http.MethodPost, "/v1/service-orders", `{"client_id":"cli-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateServiceOrderInput{ClientID: "cli-1", VehicleID: "veh-1", Origin: entities.ServiceOrderOriginEmployee}).
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceOrderStatusReceived, ClientID: "cli-1", VehicleID: "veh-1"}, nil)

		w := serve(r, http.MethodPost, "/v1/service-orders", `{"client_id":"cli-1","vehicle_id":"veh-1","origin":"employee"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "os-1" || body["status"] != "RECEIVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Transitions(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "os-404").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)

		w := serve(r, http.MethodGet, "/v1/service-orders/os-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("diagnose", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().MarkInDiagnosis(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceOrderStatusInDiagnosis}, nil)

		w := serve(r, http.MethodPatch, "/v1/service-orders/os-1/diagnose", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("illegal transition is a conflict", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().MarkDelivered(gomock.Any(), "os-1").Return(entities.ServiceOrder{}, &entities.InvalidStatusTransitionError{
			EntityKind: entities.EntityKindServiceOrder, From: "IN_DIAGNOSIS", To: "DELIVERED",
		})

		w := serve(r, http.MethodPatch, "/v1/service-orders/os-1/deliver", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cancel requires a reason", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)
		w := serve(r, http.MethodPatch, "/v1/service-orders/os-1/cancel", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "os-1", "client gave up").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceOrderStatusCancelled, CancellationReason: "client gave up"}, nil)

		w := serve(r, http.MethodPatch, "/v1/service-orders/os-1/cancel", `{"reason":"client gave up"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["final"] != true {
			t.Fatalf("expected cancelled order to be final: %s", w.Body.String())
		}
	})

	t.Run("manual status with unknown status", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)
		w := serve(r, http.MethodPatch, "/v1/service-orders/os-1/status", `{"status":"LOST"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("manual status", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.ServiceOrderStatusAwaitingApproval, "cascade skipped").
			Return(entities.ServiceOrder{ID: "os-1", Status: entities.ServiceOrderStatusAwaitingApproval}, nil)

		w := serve(r, http.MethodPatch, "/v1/service-orders/os-1/status", `{"status":"awaiting_approval","reason":"cascade skipped"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
