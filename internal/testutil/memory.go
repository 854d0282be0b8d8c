// Package testutil implementaciones en memoria de los puertos de persistencia y almacenamiento,
// para tests de casos de uso y handlers sin PostgreSQL.
package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gleikstore/gleikstore-api/internal/domain"
	"github.com/gleikstore/gleikstore-api/internal/domain/entity"
	"github.com/gleikstore/gleikstore-api/internal/domain/repository"
	"github.com/gleikstore/gleikstore-api/internal/domain/warranty"
)

// Store estado compartido por todos los repos en memoria.
type Store struct {
	mu         sync.Mutex
	users      map[string]entity.User
	devices    map[string]entity.Device
	warranties map[string]entity.WarrantyTemplate // por IMEI
	documents  map[string]entity.Document         // por userID|tipo
	photos     map[string]entity.ProfilePhoto     // por userID
	products   map[string]entity.Product

	// Err, si no es nil, lo devuelven todas las operaciones (simula DB caída).
	Err error
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		users:      map[string]entity.User{},
		devices:    map[string]entity.Device{},
		warranties: map[string]entity.WarrantyTemplate{},
		documents:  map[string]entity.Document{},
		photos:     map[string]entity.ProfilePhoto{},
		products:   map[string]entity.Product{},
	}
}

func (s *Store) Users() *UserRepo          { return &UserRepo{s} }
func (s *Store) Devices() *DeviceRepo      { return &DeviceRepo{s} }
func (s *Store) Warranties() *WarrantyRepo { return &WarrantyRepo{s} }
func (s *Store) Documents() *DocumentRepo  { return &DocumentRepo{s} }
func (s *Store) Photos() *ProfilePhotoRepo { return &ProfilePhotoRepo{s} }
func (s *Store) Products() *ProductRepo    { return &ProductRepo{s} }
func (s *Store) TxRunner() *TxRunner       { return &TxRunner{s} }
func (s *Store) lock() func()              { s.mu.Lock(); return s.mu.Unlock }

// DocumentCount número de filas de documentos (todas las cuentas).
func (s *Store) DocumentCount() int {
	defer s.lock()()
	return len(s.documents)
}

// ── Users ─────────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
		if existing.CPF == u.CPF {
			return domain.ErrCPFAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email })
}

func (r *UserRepo) GetByCPF(_ context.Context, cpf string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.CPF == cpf })
}

func (r *UserRepo) find(match func(entity.User) bool) (*entity.User, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetRole(_ context.Context, id string) (string, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return "", r.s.Err
	}
	if u, ok := r.s.users[id]; ok {
		return u.Role, nil
	}
	return "", nil
}

// ── Devices ───────────────────────────────────────────────────────────────────

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

type DeviceRepo struct{ s *Store }

func (r *DeviceRepo) Create(_ context.Context, d *entity.Device) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.devices[d.ID] = *d
	return nil
}

func (r *DeviceRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Device, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if d, ok := r.s.devices[id]; ok && d.UserID == userID {
		return &d, nil
	}
	return nil, nil
}

func (r *DeviceRepo) ListByUser(_ context.Context, userID string) ([]*entity.Device, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []*entity.Device
	for _, d := range r.s.devices {
		if d.UserID == userID {
			d := d
			out = append(out, &d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *DeviceRepo) Update(_ context.Context, d *entity.Device) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	if cur, ok := r.s.devices[d.ID]; !ok || cur.UserID != d.UserID {
		return domain.ErrDeviceNotFound
	}
	r.s.devices[d.ID] = *d
	return nil
}

func (r *DeviceRepo) DeleteByIDAndUser(_ context.Context, id, userID string) (bool, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	if d, ok := r.s.devices[id]; ok && d.UserID == userID {
		delete(r.s.devices, id)
		return true, nil
	}
	return false, nil
}

func (r *DeviceRepo) FindFirstByIMEI(_ context.Context, imei string) (*entity.Device, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var first *entity.Device
	for _, d := range r.s.devices {
		if d.IMEI == imei && (first == nil || d.CreatedAt.Before(first.CreatedAt)) {
			d := d
			first = &d
		}
	}
	return first, nil
}

func (r *DeviceRepo) SyncWarranty(_ context.Context, imei, model string, purchaseDate, warrantyEnd time.Time) (int64, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	var n int64
	for id, d := range r.s.devices {
		if d.IMEI != imei {
			continue
		}
		p, e := purchaseDate, warrantyEnd
		d.Model, d.PurchaseDate, d.WarrantyEnd = model, &p, &e
		r.s.devices[id] = d
		n++
	}
	return n, nil
}

// ── Warranties ────────────────────────────────────────────────────────────────

var _ repository.WarrantyRepository = (*WarrantyRepo)(nil)

type WarrantyRepo struct{ s *Store }

func (r *WarrantyRepo) GetByIMEI(_ context.Context, imei string) (*entity.WarrantyTemplate, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if w, ok := r.s.warranties[imei]; ok {
		return &w, nil
	}
	return nil, nil
}

func (r *WarrantyRepo) Upsert(_ context.Context, w *entity.WarrantyTemplate) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	if cur, ok := r.s.warranties[w.IMEI]; ok {
		w.ID, w.CreatedAt = cur.ID, cur.CreatedAt
	}
	r.s.warranties[w.IMEI] = *w
	return nil
}

// ── Documents / photos ────────────────────────────────────────────────────────

var (
	_ repository.DocumentRepository     = (*DocumentRepo)(nil)
	_ repository.ProfilePhotoRepository = (*ProfilePhotoRepo)(nil)
)

type DocumentRepo struct{ s *Store }

func (r *DocumentRepo) Upsert(_ context.Context, d *entity.Document) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	key := d.UserID + "|" + string(d.DocumentType)
	if cur, ok := r.s.documents[key]; ok {
		d.ID = cur.ID
	}
	r.s.documents[key] = *d
	return nil
}

func (r *DocumentRepo) ListByUser(_ context.Context, userID string) ([]*entity.Document, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []*entity.Document
	for _, d := range r.s.documents {
		if d.UserID == userID {
			d := d
			out = append(out, &d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

type ProfilePhotoRepo struct{ s *Store }

func (r *ProfilePhotoRepo) Upsert(_ context.Context, p *entity.ProfilePhoto) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	if cur, ok := r.s.photos[p.UserID]; ok {
		p.ID = cur.ID
	}
	r.s.photos[p.UserID] = *p
	return nil
}

func (r *ProfilePhotoRepo) GetByUser(_ context.Context, userID string) (*entity.ProfilePhoto, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if p, ok := r.s.photos[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

// ── Products ──────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	defer r.s.lock()()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) ListAvailable(_ context.Context) ([]*entity.Product, error) {
	defer r.s.lock()()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.Available {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

// ── Tx ────────────────────────────────────────────────────────────────────────

// TxRunner ejecuta fn sobre los mismos repos; no hay rollback real.
type TxRunner struct{ s *Store }

func (t *TxRunner) Run(ctx context.Context, fn func(repository.WarrantyRepository, repository.DeviceRepository) error) error {
	return fn(t.s.Warranties(), t.s.Devices())
}

// ── Storage / PDF ─────────────────────────────────────────────────────────────

// ErrRemoteDown error que devuelve FileStorage cuando Fail está activo.
var ErrRemoteDown = errors.New("storage remoto no disponible")

// FileStorage guarda en memoria las claves recibidas y devuelve una URL determinista.
type FileStorage struct {
	mu   sync.Mutex
	Keys []string
	Fail bool
}

func (f *FileStorage) Store(_ context.Context, localPath, bucket, objectKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = os.Remove(localPath)
	if f.Fail {
		return "", ErrRemoteDown
	}
	f.Keys = append(f.Keys, objectKey)
	return "https://storage.test/" + bucket + "/" + filepath.ToSlash(objectKey), nil
}

func (f *FileStorage) Backend() string { return "memory" }

// CertificateGenerator devuelve un PDF mínimo y recuerda la URL del QR.
type CertificateGenerator struct {
	LastURL string
}

func (g *CertificateGenerator) GenerateWarrantyCertificate(_ context.Context, s warranty.Status, lookupURL string) ([]byte, error) {
	g.LastURL = lookupURL
	return []byte("%PDF-1.4 " + s.IMEI), nil
}
