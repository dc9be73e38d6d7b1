package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stitchfit/marketplace/internal/logging"
	"github.com/stitchfit/marketplace/internal/mailer"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/transport"
)

// ContactService relays a customer's inquiry about a product to its seller
// and confirms to the customer.
type ContactService struct {
	repo *repo.GormRepo
	mail mailer.Mailer
}

func NewContactService(r *repo.GormRepo, m mailer.Mailer) *ContactService {
	return &ContactService{repo: r, mail: m}
}

func (svc *ContactService) ContactSeller(ctx context.Context, req transport.ContactSellerRequest) error {
	product, err := svc.repo.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return notFound("Product", req.ProductID.String())
		}
		return fmt.Errorf("load product: %w", err)
	}

	inquiry := fmt.Sprintf(
		"<p>A customer (%s) is interested in your product <b>%s</b>:</p><p>%s</p>",
		req.CustomerEmail, product.Name, req.Message,
	)
	if err := svc.mail.Send(product.SellerEmail, "Inquiry about "+product.Name, inquiry); err != nil {
		return fmt.Errorf("%w: %v", ErrExternal, err)
	}

	confirmation := fmt.Sprintf(
		"<p>Your message about <b>%s</b> was sent to the seller.</p>",
		product.Name,
	)
	if err := svc.mail.Send(req.CustomerEmail, "Message sent", confirmation); err != nil {
		logging.FromContext(ctx).Warn("contact_confirmation_error", "customer", req.CustomerEmail, "error", err)
		return fmt.Errorf("%w: %v", ErrExternal, err)
	}
	return nil
}
