package exceptions

import (
	"fmt"
	"net/http"
	"vaxtrack-service/internal/pkg/constvars"
)

var (
	// Request boundary
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientAllFieldsRequired, constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithServer, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithServer, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Booking workflow
	ErrVaccineNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientVaccineNotFound, constvars.ErrDevVaccineNotExists)
	}
	ErrHospitalNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientHospitalNotAvailable, constvars.ErrDevHospitalNotAvailable)
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}
	ErrVaccineAlreadyBooked = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientVaccineAlreadyBooked, constvars.ErrDevVaccineAlreadyPending)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithServer, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithServer, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithServer, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithServer, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Diagnosis upstream
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrDiagnosisUpstreamStatus = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientSomethingWrongWithServer, fmt.Sprintf(constvars.ErrDevDiagnosisUpstreamStatus, statusCode))
	}
	ErrDiagnosisDecodeResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadGateway, constvars.ErrClientSomethingWrongWithServer, constvars.ErrDevDiagnosisDecodeResponse)
	}
	ErrDiagnosisMissingAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithServer, constvars.ErrDevDiagnosisMissingAPIKey)
	}
)
