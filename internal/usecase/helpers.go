package usecase

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

// opaque codes mailed to users: confirmation, reset password, change email
const codeLength = 32

// internalError logs the cause and hides it behind a 500.
func internalError(logger usecasecontract.IAppLogger, op string, err error) error {
	logger.Errorf("%s: %v", op, err)
	return apperror.Internal(fmt.Errorf("%s: %w", op, err))
}

// buildLink appends query parameters to base.
func buildLink(base string, params map[string]string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// imageUploader stores images under a key prefix. A nil storage disables uploads.
type imageUploader struct {
	storage contract.IFileStorage
	logger  usecasecontract.IAppLogger
	now     func() time.Time
}

func (u imageUploader) enabled() bool {
	return u.storage != nil
}

func (u imageUploader) upload(ctx context.Context, prefix, ownerID string, file *entity.FileUpload) (entity.Image, error) {
	if !strings.HasPrefix(file.ContentType, "image/") {
		return entity.Image{}, apperror.BadRequest("only image files are allowed")
	}
	now := time.Now
	if u.now != nil {
		now = u.now
	}
	key := fmt.Sprintf("%s/%s-%d%s", prefix, ownerID, now().UnixNano(), strings.ToLower(path.Ext(file.Filename)))
	location, err := u.storage.Upload(ctx, key, file.Reader, file.Size, file.ContentType)
	if err != nil {
		return entity.Image{}, internalError(u.logger, "upload image", err)
	}
	return entity.Image{URL: location, ID: key}, nil
}

// remove deletes a stored image. Failures are logged only.
func (u imageUploader) remove(ctx context.Context, img entity.Image) {
	if u.storage == nil || img.ID == "" {
		return
	}
	if err := u.storage.Delete(ctx, img.ID); err != nil {
		u.logger.Warnf("failed to delete image %s: %v", img.ID, err)
	}
}

// productLookup reads products through an optional cache.
type productLookup struct {
	repo   contract.IProductRepository
	cache  contract.IProductCache
	logger usecasecontract.IAppLogger
}

func (p *productLookup) byID(ctx context.Context, id string) (*entity.Product, error) {
	if p.cache != nil {
		product, ok, err := p.cache.GetProduct(ctx, id)
		if err != nil {
			p.logger.Warnf("product cache read failed for %s: %v", id, err)
		} else if ok {
			return product, nil
		}
	}
	product, err := p.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.remember(ctx, product)
	return product, nil
}

// byIDs returns the existing products keyed by id.
func (p *productLookup) byIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	found := make(map[string]*entity.Product, len(ids))
	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if p.cache != nil {
			product, ok, err := p.cache.GetProduct(ctx, id)
			if err == nil && ok {
				found[id] = product
				continue
			}
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return found, nil
	}
	products, err := p.repo.GetProductsByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		found[product.ID] = product
		p.remember(ctx, product)
	}
	return found, nil
}

func (p *productLookup) remember(ctx context.Context, product *entity.Product) {
	if p.cache == nil {
		return
	}
	if err := p.cache.SetProduct(ctx, product); err != nil {
		p.logger.Warnf("product cache write failed for %s: %v", product.ID, err)
	}
}

func (p *productLookup) invalidate(ctx context.Context, ids ...string) {
	if p.cache == nil {
		return
	}
	for _, id := range ids {
		if err := p.cache.InvalidateProduct(ctx, id); err != nil {
			p.logger.Warnf("product cache invalidation failed for %s: %v", id, err)
		}
	}
}
