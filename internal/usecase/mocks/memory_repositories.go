// Package mocks provides in-memory implementations of the domain contracts
// for use case tests.
package mocks

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// ErrForced is returned by fakes configured to fail.
var ErrForced = errors.New("forced failure")

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// UserRepository

type UserRepository struct {
	mu    sync.Mutex
	users map[string]entity.User

	FailUpdate bool
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(users ...*entity.User) *UserRepository {
	r := &UserRepository{users: map[string]entity.User{}}
	for _, u := range users {
		r.users[u.ID] = *u
	}
	return r
}

func (r *UserRepository) CreateUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == user.ID || u.Email == user.Email || u.Username == user.Username {
			return contract.ErrDuplicateKey
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) find(match func(entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			cp := u
			return &cp, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *UserRepository) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id })
}

func (r *UserRepository) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username })
}

func (r *UserRepository) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepository) UpdateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailUpdate {
		return nil, ErrForced
	}
	stored, ok := r.users[user.ID]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && (u.Email == user.Email || u.Username == user.Username) {
			return nil, contract.ErrDuplicateKey
		}
	}
	next := *user
	next.RefreshTokenHash = stored.RefreshTokenHash
	r.users[user.ID] = next
	cp := next
	return &cp, nil
}

func (r *UserRepository) SetRefreshTokenHash(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return contract.ErrUserNotFound
	}
	u.RefreshTokenHash = hash
	r.users[id] = u
	return nil
}

func (r *UserRepository) SwapRefreshTokenHash(_ context.Context, id, oldHash, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return contract.ErrUserNotFound
	}
	if u.RefreshTokenHash != oldHash {
		return contract.ErrStaleToken
	}
	u.RefreshTokenHash = newHash
	r.users[id] = u
	return nil
}

func (r *UserRepository) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return contract.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) ListUsers(_ context.Context, filter entity.UserListFilter) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	term := strings.ToLower(filter.Search)
	var out []*entity.User
	for _, u := range r.users {
		if filter.ExcludeRole != "" && u.Role == filter.ExcludeRole {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(u.FullName+" "+u.Username+" "+u.Email), term) {
			continue
		}
		cp := u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return paginate(out, filter.Page, filter.Limit), int64(len(out)), nil
}

func (r *UserRepository) ReplaceAll(_ context.Context, users []*entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = map[string]entity.User{}
	for _, u := range users {
		r.users[u.ID] = *u
	}
	return nil
}

// Stored returns the persisted copy of a user, or nil.
func (r *UserRepository) Stored(id string) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	return &u
}

// ProductRepository

type ProductRepository struct {
	mu       sync.Mutex
	products map[string]entity.Product

	FailDecrementFor string
}

var _ contract.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(products ...*entity.Product) *ProductRepository {
	r := &ProductRepository{products: map[string]entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = *p
	}
	return r
}

func (r *ProductRepository) CreateProduct(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == product.ID || p.Name == product.Name || p.Slug == product.Slug {
			return contract.ErrDuplicateKey
		}
	}
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) find(match func(entity.Product) bool) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if match(p) {
			cp := p
			return &cp, nil
		}
	}
	return nil, contract.ErrProductNotFound
}

func (r *ProductRepository) GetProductByID(_ context.Context, id string) (*entity.Product, error) {
	return r.find(func(p entity.Product) bool { return p.ID == id })
}

func (r *ProductRepository) GetProductBySlug(_ context.Context, slug string) (*entity.Product, error) {
	return r.find(func(p entity.Product) bool { return p.Slug == slug })
}

func (r *ProductRepository) GetProductByName(_ context.Context, name string) (*entity.Product, error) {
	return r.find(func(p entity.Product) bool { return p.Name == name })
}

func (r *ProductRepository) GetProductsByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *ProductRepository) ListProducts(_ context.Context, filter entity.ProductListFilter) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	term := strings.ToLower(filter.Search)
	var out []*entity.Product
	for _, p := range r.products {
		if term != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Slug+" "+p.Category), term) {
			continue
		}
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return paginate(out, filter.Page, filter.Limit), int64(len(out)), nil
}

func (r *ProductRepository) UpdateProduct(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return contract.ErrProductNotFound
	}
	for id, p := range r.products {
		if id != product.ID && (p.Name == product.Name || p.Slug == product.Slug) {
			return contract.ErrDuplicateKey
		}
	}
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) DeleteProduct(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return contract.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) DecrementStock(_ context.Context, id string, qty int) error {
	if qty <= 0 {
		return contract.ErrInvalidQuantity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return contract.ErrProductNotFound
	}
	if id == r.FailDecrementFor || p.Stock < qty {
		return contract.ErrInsufficientStock
	}
	p.Stock -= qty
	p.Sold += qty
	r.products[id] = p
	return nil
}

func (r *ProductRepository) IncrementStock(_ context.Context, id string, qty int) error {
	if qty <= 0 {
		return contract.ErrInvalidQuantity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return contract.ErrProductNotFound
	}
	p.Stock += qty
	p.Sold -= qty
	r.products[id] = p
	return nil
}

func (r *ProductRepository) ReplaceAll(_ context.Context, products []*entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = map[string]entity.Product{}
	for _, p := range products {
		r.products[p.ID] = *p
	}
	return nil
}

// Stored returns the persisted copy of a product, or nil.
func (r *ProductRepository) Stored(id string) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil
	}
	return &p
}

// CategoryRepository

type CategoryRepository struct {
	mu         sync.Mutex
	categories map[string]entity.Category
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(categories ...*entity.Category) *CategoryRepository {
	r := &CategoryRepository{categories: map[string]entity.Category{}}
	for _, c := range categories {
		r.categories[c.ID] = *c
	}
	return r
}

func (r *CategoryRepository) CreateCategory(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.ID == category.ID || c.Name == category.Name || c.Slug == category.Slug {
			return contract.ErrDuplicateKey
		}
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) find(match func(entity.Category) bool) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if match(c) {
			cp := c
			cp.Products = append([]string(nil), c.Products...)
			return &cp, nil
		}
	}
	return nil, contract.ErrCategoryNotFound
}

func (r *CategoryRepository) GetCategoryByName(_ context.Context, name string) (*entity.Category, error) {
	return r.find(func(c entity.Category) bool { return c.Name == name })
}

func (r *CategoryRepository) GetCategoryBySlug(_ context.Context, slug string) (*entity.Category, error) {
	return r.find(func(c entity.Category) bool { return c.Slug == slug })
}

func (r *CategoryRepository) ListCategories(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.categories {
		cp := c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepository) UpdateCategory(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return contract.ErrCategoryNotFound
	}
	for id, c := range r.categories {
		if id != category.ID && (c.Name == category.Name || c.Slug == category.Slug) {
			return contract.ErrDuplicateKey
		}
	}
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) DeleteCategory(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return contract.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *CategoryRepository) AddProduct(_ context.Context, categoryName, productID string) error {
	return r.updateProducts(categoryName, func(ids []string) []string {
		for _, id := range ids {
			if id == productID {
				return ids
			}
		}
		return append(ids, productID)
	})
}

func (r *CategoryRepository) RemoveProduct(_ context.Context, categoryName, productID string) error {
	return r.updateProducts(categoryName, func(ids []string) []string {
		out := ids[:0]
		for _, id := range ids {
			if id != productID {
				out = append(out, id)
			}
		}
		return out
	})
}

func (r *CategoryRepository) updateProducts(name string, fn func([]string) []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.categories {
		if c.Name == name {
			c.Products = fn(append([]string(nil), c.Products...))
			r.categories[id] = c
			return nil
		}
	}
	return contract.ErrCategoryNotFound
}

func (r *CategoryRepository) ReplaceAll(_ context.Context, categories []*entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = map[string]entity.Category{}
	for _, c := range categories {
		r.categories[c.ID] = *c
	}
	return nil
}

// CartRepository

type CartRepository struct {
	mu    sync.Mutex
	carts map[string]entity.Cart // by user id

	FailClear int
}

var _ contract.ICartRepository = (*CartRepository)(nil)

func NewCartRepository(carts ...*entity.Cart) *CartRepository {
	r := &CartRepository{carts: map[string]entity.Cart{}}
	for _, c := range carts {
		r.carts[c.UserID] = *c
	}
	return r
}

func (r *CartRepository) GetCartByUserID(_ context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		return nil, contract.ErrCartNotFound
	}
	c.Items = append([]entity.CartItem{}, c.Items...)
	return &c, nil
}

func (r *CartRepository) EnsureCart(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[cart.UserID]; !ok {
		r.carts[cart.UserID] = *cart
	}
	return nil
}

func (r *CartRepository) AddItem(_ context.Context, userID string, item entity.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		return contract.ErrCartNotFound
	}
	if _, exists := c.Item(item.ProductID); exists {
		return contract.ErrCartItemExists
	}
	c.Items = append(append([]entity.CartItem{}, c.Items...), item)
	r.carts[userID] = c
	return nil
}

func (r *CartRepository) IncrementItem(_ context.Context, userID, productID string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		return contract.ErrCartItemNotFound
	}
	items := append([]entity.CartItem{}, c.Items...)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += delta
			c.Items = items
			r.carts[userID] = c
			return nil
		}
	}
	return contract.ErrCartItemNotFound
}

func (r *CartRepository) RemoveItem(_ context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		return contract.ErrCartItemNotFound
	}
	var items []entity.CartItem
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	if len(items) == len(c.Items) {
		return contract.ErrCartItemNotFound
	}
	c.Items = items
	r.carts[userID] = c
	return nil
}

func (r *CartRepository) ClearCart(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailClear > 0 {
		r.FailClear--
		return ErrForced
	}
	c, ok := r.carts[userID]
	if !ok {
		return contract.ErrCartNotFound
	}
	c.Items = []entity.CartItem{}
	r.carts[userID] = c
	return nil
}

// OrderRepository

type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]entity.Order

	FailCreate bool
}

var _ contract.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(orders ...*entity.Order) *OrderRepository {
	r := &OrderRepository{orders: map[string]entity.Order{}}
	for _, o := range orders {
		r.orders[o.ID] = *o
	}
	return r
}

func (r *OrderRepository) CreateOrder(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreate {
		return ErrForced
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *OrderRepository) GetOrderByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, contract.ErrOrderNotFound
	}
	return &o, nil
}

func (r *OrderRepository) ListOrders(_ context.Context, filter entity.OrderListFilter) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		cp := o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return paginate(out, filter.Page, filter.Limit), int64(len(out)), nil
}

func (r *OrderRepository) UpdateOrderStatus(_ context.Context, id string, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return contract.ErrOrderNotFound
	}
	o.Status = status
	r.orders[id] = o
	return nil
}

func (r *OrderRepository) DeleteOrder(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return contract.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *OrderRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}
