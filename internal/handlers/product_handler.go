package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"shrimpfarm/internal/repositories"
	"shrimpfarm/internal/services"
	"shrimpfarm/pkg/upload"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products, including the multipart
// add-product upload.
type ProductHandler struct {
	service  *services.ProductService
	uploads  *upload.Store
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, uploads *upload.Store) *ProductHandler {
	return &ProductHandler{
		service:  service,
		uploads:  uploads,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/product-detail/:product_id", h.HandleGetProductDetail)
	router.Post("/add-product", h.HandleAddProduct)
}

// HandleListProducts returns listing rows, optionally filtered by
// ?product_type=. Zero matches is a 404 with a message, mirroring how the
// clients treat an empty inventory.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	productType := c.Query("product_type")

	products, err := h.service.ListProducts(productType)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database query error",
		})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No products found",
		})
	}
	return c.JSON(products)
}

// HandleGetProductDetail returns the full row for a single product.
func (h *ProductHandler) HandleGetProductDetail(c *fiber.Ctx) error {
	productID := c.Params("product_id")

	product, err := h.service.GetProductDetail(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product detail %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch product details",
		})
	}
	return c.JSON(product)
}

// HandleAddProduct accepts the multipart add-product form. The image is stored
// to disk first and the row inserted after; an insert failure leaves the file
// orphaned, which is the accepted trade-off of the pipeline.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("product_image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	quantity, err := strconv.ParseFloat(c.FormValue("product_quantity", "0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product_quantity",
		})
	}
	threshold, err := strconv.ParseFloat(c.FormValue("threshold", "0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid threshold",
		})
	}

	input := services.CreateProductInput{
		ProductName:     c.FormValue("product_name"),
		ProductType:     c.FormValue("product_type"),
		ProductUnit:     c.FormValue("product_unit"),
		ProductQuantity: quantity,
		Threshold:       threshold,
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add product",
		})
	}
	defer file.Close()

	storedName, err := h.uploads.Save(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error storing uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add product",
		})
	}
	input.StoredImage = storedName

	if err := h.validate.Struct(input); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": errorMessages,
		})
	}

	product, err := h.service.CreateProduct(input)
	if err != nil {
		log.Printf("Error inserting product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Product added successfully",
		"product_id": product.ProductID,
	})
}
