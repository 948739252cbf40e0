package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wisskirchenj/account-reactive/internal/domain/payroll"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

// PayrollHandler defines the interface for the payroll endpoints
type PayrollHandler interface {
	Payslips(ctx *gin.Context)
	Upload(ctx *gin.Context)
	Update(ctx *gin.Context)
}

// payrollHandler struct holds the services
type payrollHandler struct {
	payrollService payroll.PayrollService
	logger         logger.Logger
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(payrollService payroll.PayrollService, logger logger.Logger) PayrollHandler {
	return &payrollHandler{
		payrollService: payrollService,
		logger:         logger,
	}
}

// Payslips handles the GET request for the payroll of the authenticated employee
// @Summary List own payslips
// @Tags Payroll
// @Produce json
// @Param period query string false "Month in mm-yyyy format"
// @Success 200 {array} PayslipResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/empl/payment [get]
func (handler *payrollHandler) Payslips(ctx *gin.Context) {
	principal := Principal(ctx)

	payslips, err := handler.payrollService.Payslips(ctx.Request.Context(), principal.Email, ctx.Query("period"))
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	listResponse := make([]PayslipResponse, 0, len(payslips))
	for _, payslip := range payslips {
		listResponse = append(listResponse, PayslipResponse{
			Name:     payslip.Name,
			Lastname: payslip.Lastname,
			Period:   payslip.Period,
			Salary:   payslip.Salary,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Upload handles the POST request storing new salaries, all or none
// @Summary Upload salaries
// @Description Accepts an array of records or a single record.
// @Tags Payroll
// @Accept json
// @Produce json
// @Param requestBody body []SalaryRecordRequest true "Salary records"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/acct/payments [post]
func (handler *payrollHandler) Upload(ctx *gin.Context) {
	requests, err := bindSalaryRecords(ctx)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, "Invalid salary data: "+err.Error())
		return
	}

	records := make([]*payroll.SalaryRecord, len(requests))
	for i := range requests {
		records[i] = requests[i].ToSalaryRecord()
	}

	count, err := handler.payrollService.Upload(ctx.Request.Context(), records)
	if err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{Status: fmt.Sprintf("%d records %s", count, payroll.MsgAdded)})
}

// bindSalaryRecords reads either a JSON array of records or a single record.
func bindSalaryRecords(ctx *gin.Context) ([]SalaryRecordRequest, error) {
	body, err := ctx.GetRawData()
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var requests []SalaryRecordRequest
		if err := json.Unmarshal(trimmed, &requests); err != nil {
			return nil, err
		}
		return requests, nil
	}

	var request SalaryRecordRequest
	if err := json.Unmarshal(trimmed, &request); err != nil {
		return nil, err
	}
	return []SalaryRecordRequest{request}, nil
}

// Update handles the PUT request changing an existing salary
// @Summary Update a salary
// @Tags Payroll
// @Accept json
// @Produce json
// @Param requestBody body SalaryRecordRequest true "Salary record"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/acct/payments [put]
func (handler *payrollHandler) Update(ctx *gin.Context) {
	var request SalaryRecordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, "Invalid salary data: "+err.Error())
		return
	}

	if err := handler.payrollService.Update(ctx.Request.Context(), request.ToSalaryRecord()); err != nil {
		handleError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{Status: payroll.MsgUpdated})
}
