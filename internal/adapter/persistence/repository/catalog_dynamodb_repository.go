package repository

import (
	"context"

	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalogo"

type catalogItem struct {
	Clave        string `dynamodbav:"clave"`
	Tipificacion string `dynamodbav:"tipificacion"`
	Actividad    string `dynamodbav:"actividad"`
	DiasHabiles  int    `dynamodbav:"dias_habiles"`
}

// CatalogDynamoRepository reads the activity catalog from DynamoDB.
//
// Table requirements:
//   - PK: clave (string) = "<tipificacion>#<actividad>"
//
// The composite key makes the (tipificacion, actividad) lookup a single
// GetItem. The table is seeded out of band; this repository never writes.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func catalogKey(tipificacion, actividad string) string {
	return tipificacion + "#" + actividad
}

func (r *CatalogDynamoRepository) Get(ctx context.Context, tipificacion, actividad string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"clave": &types.AttributeValueMemberS{Value: catalogKey(tipificacion, actividad)},
		},
	})
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogEntry{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var entries []entities.CatalogEntry
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromCatalogItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func fromCatalogItem(it catalogItem) entities.CatalogEntry {
	return entities.CatalogEntry{
		Tipificacion: it.Tipificacion,
		Actividad:    it.Actividad,
		DiasHabiles:  it.DiasHabiles,
	}
}
