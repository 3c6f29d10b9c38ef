package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mecanica_xpto_workflow/internal/domain/entities"
	mock_interfaces "mecanica_xpto_workflow/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validMPPayload = `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`

func approvedBudget(id string, total string) entities.Budget {
	b := budget(id, "os-1", entities.BudgetStatusApproved)
	b.Items = []entities.BudgetItem{{
		ID: "i-1", Type: entities.BudgetItemTypeService, Description: "labor", Quantity: 1, UnitPrice: decimal.RequireFromString(total),
	}}
	return b
}

func TestBillingPaymentUseCase_PayBudget_Validations(t *testing.T) {
	t.Run("empty budget id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayBudget(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayBudget(context.Background(), "b-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(validMPPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayBudget_BudgetChecks(t *testing.T) {
	cases := []struct {
		name   string
		budget entities.Budget
		repErr error
		want   error
	}{
		{name: "budget not found", budget: entities.Budget{}, want: ErrBudgetNotFound},
		{name: "budget not approved", budget: budget("b-1", "os-1", entities.BudgetStatusSent), want: ErrBudgetNotApproved},
		{name: "repository error", repErr: errors.New("db"), want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(nil, budgets, gateway, nil)

			budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(tc.budget, tc.repErr)

			_, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(validMPPayload))
			if tc.repErr != nil {
				if !errors.Is(err, tc.repErr) {
					t.Fatalf("expected repository error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBillingPaymentUseCase_PayBudget_PayloadValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{name: "missing payment_method_id", payload: `{"payer":{"email":"x@test.com"}}`},
		{name: "missing payer", payload: `{"payment_method_id":"pix"}`},
		{name: "payer without email or id", payload: `{"payment_method_id":"pix","payer":{"first_name":"Ana"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(nil, budgets, gateway, nil)

			budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", "10"), nil)

			_, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(tc.payload))
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
			}
		})
	}
}

func TestBillingPaymentUseCase_PayBudget_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, budgets, gateway, nil)

			budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", "10"), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err).Times(1)

			_, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(validMPPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, budgets, gateway, nil)

		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", "10"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(validMPPayload))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_PayBudget_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, budgets, gateway, nil)

			budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", "77.20"), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "b-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Budget b-1" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the budget total, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["type"] != "customer" {
						t.Fatalf("expected default payer type")
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)
			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
				func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
					if p.ID != "pay-1" || p.BudgetID != "b-1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if !p.Amount.Equal(decimal.RequireFromString("77.2")) || p.Date.IsZero() {
						t.Fatalf("unexpected amount/date: %+v", p)
					}
					return p, nil
				},
			)

			res, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"},"transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, budgets, nil, nil, WithPaymentMock(true))

		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", "50"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(saveEcho[entities.BillingPayment])

		res, err := uc.PayBudget(context.Background(), "b-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusApproved || res.ID == "" || res.ProviderPayload["status_detail"] != "accredited" {
			t.Fatalf("unexpected payment: %+v", res)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, budgets, gateway, nil)

		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(approvedBudget("b-1", "11"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, errors.New("db-create"))

		_, err := uc.PayBudget(context.Background(), "b-1", json.RawMessage(validMPPayload))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.BillingPayment{ID: "pay-1"}, nil)

		p, err := uc.GetByID(context.Background(), " pay-1 ")
		if err != nil || p.ID != "pay-1" {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("ListByBudgetID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.ListByBudgetID(context.Background(), " "); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("ListByBudgetID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, nil)
		repo.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return([]entities.BillingPayment{{ID: "p1"}, {ID: "p2"}}, nil)

		items, err := uc.ListByBudgetID(context.Background(), "b-1")
		if err != nil || len(items) != 2 {
			t.Fatalf("unexpected result: %+v %v", items, err)
		}
	})
}

func TestBillingPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("non-object payer must be rejected")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 123}}) {
			t.Fatalf("numeric payer id should be accepted")
		}
		if hasPayerID(map[string]any{"id": nil}) {
			t.Fatalf("nil payer id must be rejected")
		}
	})

	t.Run("ensurePayerType keeps explicit type", func(t *testing.T) {
		m := map[string]any{"payer": map[string]any{"type": "guest"}}
		ensurePayerType(m)
		if m["payer"].(map[string]any)["type"] != "guest" {
			t.Fatalf("explicit payer type overwritten")
		}
	})
}
