package handler

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/domain/entity"
	"logisocial/internal/usecase"
	"logisocial/pkg/response"
)

type LogisticProviderHandler struct {
	providerUseCase *usecase.LogisticProviderUseCase
}

func NewLogisticProviderHandler(providerUseCase *usecase.LogisticProviderUseCase) *LogisticProviderHandler {
	return &LogisticProviderHandler{
		providerUseCase: providerUseCase,
	}
}

type createProviderRequest struct {
	CompanyName  string   `json:"company_name" validate:"required"`
	RUC          string   `json:"ruc" validate:"required"`
	ContactEmail string   `json:"contact_email"`
	Services     []string `json:"services"`
}

type updateProviderRequest struct {
	CompanyName  *string   `json:"company_name"`
	RUC          *string   `json:"ruc"`
	ContactEmail *string   `json:"contact_email"`
	Services     *[]string `json:"services"`
}

func (h *LogisticProviderHandler) CreateProvider(c echo.Context) error {
	var req createProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	provider, err := h.providerUseCase.Create(c.Request().Context(), &entity.LogisticProvider{
		CompanyName:  req.CompanyName,
		RUC:          req.RUC,
		ContactEmail: req.ContactEmail,
		Services:     req.Services,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Provider created successfully", provider.ID)
}

func (h *LogisticProviderHandler) GetProviders(c echo.Context) error {
	providers, err := h.providerUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, providers)
}

func (h *LogisticProviderHandler) GetProviderByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	provider, err := h.providerUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, provider)
}

func (h *LogisticProviderHandler) UpdateProvider(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	err = h.providerUseCase.Update(c.Request().Context(), id, entity.LogisticProviderUpdate{
		CompanyName:  req.CompanyName,
		RUC:          req.RUC,
		ContactEmail: req.ContactEmail,
		Services:     req.Services,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Provider updated successfully")
}

func (h *LogisticProviderHandler) DeleteProvider(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.providerUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Provider deleted successfully")
}
