package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	auth "github.com/stitchfit/marketplace/internal/middleware/auth"
	"github.com/stitchfit/marketplace/internal/models"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	OrderHandler   *OrderHTTP
	ProductHandler *ProductHTTP
	ProfileHandler *ProfileHTTP
	ImageHandler   *ImageHTTP
	ContactHandler *ContactHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	jwt := auth.NewJWT(d.JWTSecret)
	seller := string(models.RoleSeller)
	customer := string(models.RoleCustomer)
	admin := string(models.RoleAdmin)

	ag := e.Group("/auth")
	ag.POST("/register-seller", d.AuthHandler.RegisterSeller)
	ag.POST("/register-customer", d.AuthHandler.RegisterCustomer)
	ag.POST("/login", d.AuthHandler.Login)
	ag.POST("/forgot-password", d.AuthHandler.ForgotPassword)
	ag.PUT("/reset-password", d.AuthHandler.ResetPassword)
	ag.DELETE("/logout", d.AuthHandler.Logout, jwt.Require())

	og := e.Group("/order")
	og.POST("/place-order", d.OrderHandler.PlaceOrder, jwt.Require(customer, admin))
	og.POST("/change-order-status/:orderId", d.OrderHandler.ChangeOrderStatus, jwt.Require(seller, admin))
	og.GET("/get-order/:orderId", d.OrderHandler.GetOrder, jwt.Require())
	og.GET("/orders-by-seller/:sellerId", d.OrderHandler.OrdersBySeller, jwt.Require(seller, admin))
	og.GET("/orders-by-customer/:customerId", d.OrderHandler.OrdersByCustomer, jwt.Require(customer, admin))
	og.GET("/get-orders", d.OrderHandler.GetOrders, jwt.Require(admin))
	og.DELETE("/delete-order/:id", d.OrderHandler.DeleteOrder, jwt.Require(admin))

	pg := e.Group("/product")
	pg.POST("/create-product", d.ProductHandler.CreateProduct, jwt.Require(seller, admin))
	pg.PUT("/update-product/:id", d.ProductHandler.UpdateProduct, jwt.Require(seller, admin))
	pg.GET("/get-product/:id", d.ProductHandler.GetProduct, jwt.Require())
	pg.GET("/get-products", d.ProductHandler.GetProducts, jwt.Require())
	pg.GET("/search", d.ProductHandler.SearchProducts, jwt.Require())
	pg.DELETE("/delete-product/:id", d.ProductHandler.DeleteProduct, jwt.Require(seller, admin))

	sg := e.Group("/seller")
	sg.GET("/get-sellers", d.ProfileHandler.GetSellers, jwt.Require(admin))
	sg.GET("/:id", d.ProfileHandler.GetSeller, jwt.Require())
	sg.PUT("/:id", d.ProfileHandler.UpdateSeller, jwt.Require(seller, admin))

	cg := e.Group("/customer")
	cg.GET("/get-customers", d.ProfileHandler.GetCustomers, jwt.Require(admin))
	cg.GET("/:id", d.ProfileHandler.GetCustomer, jwt.Require())
	cg.PUT("/:id", d.ProfileHandler.UpdateCustomer, jwt.Require(customer, admin))

	ig := e.Group("/image")
	ig.POST("/upload-picture", d.ImageHandler.UploadPicture, jwt.Require(seller, admin))
	ig.PUT("/update-picture", d.ImageHandler.UpdatePicture, jwt.Require(seller, admin))
	ig.GET("/get-picture/:productId", d.ImageHandler.GetPicture, jwt.Require())
	ig.DELETE("/delete-picture/:productId", d.ImageHandler.DeletePicture, jwt.Require(seller, admin))

	e.POST("/contact/contact-seller", d.ContactHandler.ContactSeller, jwt.Require(customer))
}
