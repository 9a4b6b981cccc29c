package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vastracart/vastra-api/services"
)

func CreatePaymentOrder(svc *services.PaymentService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input services.CreateGatewayOrderInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Printf("JSON binding error: %v", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
			return
		}

		order, keyID, err := svc.CreateGatewayOrder(ctx.Request.Context(), input)
		if err != nil {
			status, message := statusForError(err)
			sendErrorResponse(ctx, status, message)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success": true,
			"order":   order,
			"key_id":  keyID,
		})
	}
}

func VerifyPayment(svc *services.PaymentService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input services.VerifyPaymentInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Printf("JSON binding error: %v", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
			return
		}

		order, err := svc.VerifyPayment(ctx.Request.Context(), ctx.GetInt("userId"), input)
		if err != nil {
			status, message := statusForError(err)
			sendErrorResponse(ctx, status, message)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"success":   true,
			"message":   "Payment verified successfully",
			"order":     order,
			"paymentId": order.RazorpayPaymentID,
		})
	}
}

// PaymentFailed records the client-reported gateway error and always answers
// 400 echoing it back. No order state changes here.
func PaymentFailed(svc *services.PaymentService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body struct {
			Error struct {
				Code        string `json:"code"`
				Description string `json:"description"`
				Source      string `json:"source"`
				Reason      string `json:"reason"`
			} `json:"error"`
			OrderData json.RawMessage `json:"orderData"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.RecordPaymentFailure(ctx.Request.Context(), services.PaymentFailureInput{
			Code:        body.Error.Code,
			Description: body.Error.Description,
			Source:      body.Error.Source,
			Reason:      body.Error.Reason,
			OrderData:   body.OrderData,
		})
		if err != nil {
			log.Printf("Failed to record payment failure: %v", err)
		}

		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment failed",
			"error":   body.Error,
		})
	}
}
