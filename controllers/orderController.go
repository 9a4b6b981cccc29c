package controllers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vastracart/vastra-api/services"
	"github.com/vastracart/vastra-api/utils"
)

// statusForError maps service errors onto the HTTP taxonomy: validation and
// trust failures are 400, missing records are 404, everything else is a 500
// carrying the underlying message.
func statusForError(err error) (int, string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrSignatureMismatch),
		errors.Is(err, services.ErrAmountMismatch),
		errors.Is(err, services.ErrGatewayBadRequest):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func PlaceOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt("userId")
		if userId == 0 {
			sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
			return
		}

		var input services.PlaceOrderInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Printf("JSON binding error: %v", err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
			return
		}

		order, err := svc.PlaceOrder(ctx.Request.Context(), userId, input)
		if err != nil {
			status, message := statusForError(err)
			sendErrorResponse(ctx, status, message)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"success": true,
			"message": "Order placed successfully",
			"data":    order,
			"orderId": order.OrderID,
		})
	}
}

func GetOrders(store services.OrderStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))

		orders, count, err := store.List(ctx.Request.Context(), services.OrderQuery{
			Page:   page,
			Limit:  limit,
			Search: ctx.Query("search"),
			Sort:   ctx.DefaultQuery("sort", "desc"),
		})
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
			return
		}

		previousPage := page - 1
		nextPage := page + 1
		totalPages := math.Ceil(float64(count) / float64(limit))

		ctx.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"metadata": gin.H{
				"total":        count,
				"currentPage":  page,
				"limit":        limit,
				"hasPrevPage":  previousPage > 0,
				"hasNextPage":  int(totalPages) > page,
				"previousPage": previousPage,
				"nextPage":     nextPage,
			},
		})
	}
}

func GetOrdersByCustomer(store services.OrderStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId, err := strconv.Atoi(ctx.Param("userId"))
		if err != nil {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
			return
		}

		orders, err := store.FindByUser(ctx.Request.Context(), userId, ctx.DefaultQuery("sort", "desc"))
		if err != nil {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
	}
}

func GetOrderByID(svc *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		order, err := svc.GetOrder(ctx.Request.Context(), ctx.Param("orderId"))
		if err != nil {
			status, message := statusForError(err)
			sendErrorResponse(ctx, status, message)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
	}
}

func UpdateOrderStatus(svc *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input services.UpdateOrderStatusInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		order, err := svc.UpdateOrderStatus(ctx.Request.Context(), ctx.Param("orderId"), input)
		if err != nil {
			status, message := statusForError(err)
			sendErrorResponse(ctx, status, message)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Order status updated successfully.",
			"order":   order,
		})
	}
}

func MarkOrdersSeen(svc *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body struct {
			UserID int `json:"userId" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		if err := svc.MarkOrdersSeen(ctx.Request.Context(), body.UserID); err != nil {
			status, message := statusForError(err)
			sendErrorResponse(ctx, status, message)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Orders marked as seen."})
	}
}

func DownloadReceipt(svc *services.OrderService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		order, err := svc.GetOrder(ctx.Request.Context(), ctx.Param("orderId"))
		if err != nil {
			status, message := statusForError(err)
			sendErrorResponse(ctx, status, message)
			return
		}

		pdf, err := utils.BuildReceiptPDF(order)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to generate receipt", err)
			return
		}

		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "receipt-"+order.OrderID+".pdf"))
		ctx.Data(http.StatusOK, "application/pdf", pdf)
	}
}
