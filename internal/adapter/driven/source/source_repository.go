package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/apba-dashboard-go/internal/domain/entity"
	"github.com/diillson/apba-dashboard-go/internal/domain/repository"
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
)

const s3Scheme = "s3://"

// ObjectGetter is the subset of the S3 client used to fetch source tables.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// SourceRepositoryImpl implementa o SourceRepository para arquivos locais e S3.
type SourceRepositoryImpl struct {
	mu       sync.Mutex
	s3Client ObjectGetter
}

// NewSourceRepository cria uma nova implementação do SourceRepository.
func NewSourceRepository() repository.SourceRepository {
	return &SourceRepositoryImpl{}
}

// NewSourceRepositoryWithS3 usa o cliente informado para fontes s3://.
func NewSourceRepositoryWithS3(client ObjectGetter) repository.SourceRepository {
	return &SourceRepositoryImpl{s3Client: client}
}

func (r *SourceRepositoryImpl) getS3Client(ctx context.Context) (ObjectGetter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Client != nil {
		return r.s3Client, nil
	}

	// Perfil e região vêm do ambiente (AWS_PROFILE, AWS_REGION)
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	r.s3Client = s3.NewFromConfig(cfg)
	return r.s3Client, nil
}

// readSource devolve o conteúdo bruto e a extensão da fonte.
func (r *SourceRepositoryImpl) readSource(ctx context.Context, source string) ([]byte, string, error) {
	if source == "" {
		return nil, "", fmt.Errorf("%w: empty source path", types.ErrSourceNotFound)
	}

	if strings.HasPrefix(source, s3Scheme) {
		bucket, key, ok := strings.Cut(strings.TrimPrefix(source, s3Scheme), "/")
		if !ok || bucket == "" || key == "" {
			return nil, "", fmt.Errorf("%w: malformed S3 URI %s", types.ErrUnsupportedSource, source)
		}
		client, err := r.getS3Client(ctx)
		if err != nil {
			return nil, "", err
		}
		out, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s: %w", types.ErrSourceNotFound, source, err)
		}
		defer out.Body.Close()
		data, err := io.ReadAll(out.Body)
		if err != nil {
			return nil, "", fmt.Errorf("error reading %s: %w", source, err)
		}
		return data, strings.ToLower(path.Ext(key)), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", types.ErrSourceNotFound, source)
		}
		return nil, "", fmt.Errorf("error reading %s: %w", source, err)
	}
	return data, strings.ToLower(filepath.Ext(source)), nil
}

func (r *SourceRepositoryImpl) loadTable(ctx context.Context, source string, columns []string) (*table, error) {
	data, ext, err := r.readSource(ctx, source)
	if err != nil {
		return nil, err
	}

	var t *table
	switch ext {
	case ".csv":
		t, err = parseCSV(source, bytes.NewReader(data))
	case ".xlsx":
		t, err = parseXLSX(source, data)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedSource, source)
	}
	if err != nil {
		return nil, err
	}
	if err := t.require(columns); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadLedger carrega o apêndice do razão geral (Lampiran II).
func (r *SourceRepositoryImpl) LoadLedger(ctx context.Context, source string) ([]entity.BudgetLineItem, error) {
	t, err := r.loadTable(ctx, source, LedgerColumns)
	if err != nil {
		return nil, err
	}

	items := make([]entity.BudgetLineItem, 0, len(t.rows))
	for _, row := range t.rows {
		items = append(items, entity.BudgetLineItem{
			AccountCode: t.cell(row, ColAccountCode),
			Description: t.cell(row, ColDescription),
			Amount:      entity.ParseAmount(t.cell(row, ColAmount)),
			Page:        entity.ParseInt(t.cell(row, ColPage)),
			Level:       entity.ParseInt(t.cell(row, ColLevel)),
			Indicator:   t.cell(row, ColIndicator),
		})
	}
	return items, nil
}

// LoadGrants carrega o apêndice de hibah (Lampiran III).
func (r *SourceRepositoryImpl) LoadGrants(ctx context.Context, source string) ([]entity.GrantRecord, error) {
	t, err := r.loadTable(ctx, source, GrantColumns)
	if err != nil {
		return nil, err
	}

	records := make([]entity.GrantRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, entity.GrantRecord{
			SeqNo:            t.cell(row, ColSeqNo),
			GrantType:        entity.GrantType(strings.TrimSpace(t.cell(row, ColGrantType))),
			Amount:           entity.ParseAmount(t.cell(row, ColAmount)),
			RecipientName:    t.cell(row, ColRecipientName),
			RecipientAddress: t.cell(row, ColAddress),
		})
	}
	return records, nil
}

// LoadAid carrega o apêndice de bantuan keuangan (Lampiran V).
func (r *SourceRepositoryImpl) LoadAid(ctx context.Context, source string) ([]entity.AidRecord, error) {
	t, err := r.loadTable(ctx, source, AidColumns)
	if err != nil {
		return nil, err
	}

	records := make([]entity.AidRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, entity.AidRecord{
			SeqNo:         t.cell(row, ColSeqNo),
			AidType:       entity.AidType(strings.TrimSpace(t.cell(row, ColAidType))),
			Amount:        entity.ParseAmount(t.cell(row, ColAmount)),
			RecipientName: t.cell(row, ColRecipientName),
		})
	}
	return records, nil
}

// LoadSpecialAllocation carrega o apêndice do Dana Otsus (Lampiran VII).
func (r *SourceRepositoryImpl) LoadSpecialAllocation(ctx context.Context, source string) ([]entity.SpecialAllocationRecord, error) {
	t, err := r.loadTable(ctx, source, SpecialAllocationColumns)
	if err != nil {
		return nil, err
	}

	records := make([]entity.SpecialAllocationRecord, 0, len(t.rows))
	for _, row := range t.rows {
		records = append(records, entity.SpecialAllocationRecord{
			AccountCode: t.cell(row, ColAccountCode),
			Description: t.cell(row, ColDescription),
			Amount:      entity.ParseAmount(t.cell(row, ColAmount)),
			Page:        entity.ParseInt(t.cell(row, ColPage)),
		})
	}
	return records, nil
}
