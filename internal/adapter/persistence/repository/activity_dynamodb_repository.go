package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"seguimiento_actividades/internal/domain/entities"
	"seguimiento_actividades/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultActivitiesTableName = "actividades"

type observationItem struct {
	Fecha      string `dynamodbav:"fecha"`
	Comentario string `dynamodbav:"comentario"`
}

type activityItem struct {
	ID              string            `dynamodbav:"id"`
	Lider           string            `dynamodbav:"lider"`
	Proyecto        string            `dynamodbav:"proyecto"`
	Tipificacion    string            `dynamodbav:"tipificacion"`
	Actividad       string            `dynamodbav:"actividad"`
	Descripcion     string            `dynamodbav:"descripcion"`
	FechaCreacion   string            `dynamodbav:"fecha_creacion"`
	FechaCierre     string            `dynamodbav:"fecha_cierre,omitempty"`
	Estado          string            `dynamodbav:"estado"`
	EstadoCaso      string            `dynamodbav:"estado_caso"`
	Horas           float64           `dynamodbav:"horas"`
	HorasAcumuladas float64           `dynamodbav:"horas_acumuladas"`
	Observaciones   []observationItem `dynamodbav:"observaciones"`
}

// ActivityDynamoRepository persists Activity entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Observations live inside the item as an ordered list; appends use
// list_append and hour accumulation uses ADD so concurrent annotations never
// read-modify-write each other's updates away.

type ActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITIES_TABLE", defaultActivitiesTableName),
	}
}

func (r *ActivityDynamoRepository) Create(ctx context.Context, a entities.Activity) (entities.Activity, error) {
	av, err := attributevalue.MarshalMap(toActivityItem(a))
	if err != nil {
		return entities.Activity{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Activity{}, err
	}
	return a, nil
}

func (r *ActivityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Activity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Activity{}, err
	}
	if len(out.Item) == 0 {
		return entities.Activity{}, nil
	}

	var it activityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Activity{}, err
	}
	return fromActivityItem(it), nil
}

func (r *ActivityDynamoRepository) List(ctx context.Context, scope entities.Scope) ([]entities.Activity, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if !scope.Unrestricted {
		input.FilterExpression = aws.String("#lider = :lider")
		input.ExpressionAttributeNames = map[string]string{"#lider": "lider"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":lider": &types.AttributeValueMemberS{Value: scope.Lider},
		}
	}

	var acts []entities.Activity
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var items []activityItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			acts = append(acts, fromActivityItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	// Scan has no server-side ordering; newest first by fecha_creacion.
	sort.Slice(acts, func(i, j int) bool {
		return acts[i].FechaCreacion.After(acts[j].FechaCreacion)
	})
	return acts, nil
}

func (r *ActivityDynamoRepository) AppendObservation(ctx context.Context, id string, obs entities.Observation, horas float64) (entities.Activity, error) {
	obsAV, err := attributevalue.MarshalMap(observationItem{
		Fecha:      obs.Fecha.UTC().Format(time.RFC3339Nano),
		Comentario: obs.Comentario,
	})
	if err != nil {
		return entities.Activity{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// The estado guard makes the closed state terminal even under races:
		// a close that lands between the usecase read and this update wins.
		ConditionExpression: aws.String("attribute_exists(#id) AND #estado <> :cerrado"),
		UpdateExpression:    aws.String("SET #obs = list_append(if_not_exists(#obs, :empty), :obs_new) ADD #acc :horas"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#estado": "estado",
			"#obs":    "observaciones",
			"#acc":    "horas_acumuladas",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cerrado": &types.AttributeValueMemberS{Value: string(entities.ActivityStatusCerrado)},
			":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":obs_new": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberM{Value: obsAV},
			}},
			":horas": &types.AttributeValueMemberN{Value: floatToString(horas)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Activity{}, nil
		}
		return entities.Activity{}, err
	}

	var it activityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Activity{}, err
	}
	return fromActivityItem(it), nil
}

func (r *ActivityDynamoRepository) Close(ctx context.Context, id string) (entities.Activity, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// Unconditional on estado: closing an already-closed activity is a no-op.
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #estado = :cerrado"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#estado": "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cerrado": &types.AttributeValueMemberS{Value: string(entities.ActivityStatusCerrado)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Activity{}, nil
		}
		return entities.Activity{}, err
	}

	var it activityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Activity{}, err
	}
	return fromActivityItem(it), nil
}

func toActivityItem(a entities.Activity) activityItem {
	it := activityItem{
		ID:              a.ID,
		Lider:           a.Lider,
		Proyecto:        a.Proyecto,
		Tipificacion:    a.Tipificacion,
		Actividad:       a.Actividad,
		Descripcion:     a.Descripcion,
		FechaCreacion:   a.FechaCreacion.UTC().Format(time.RFC3339Nano),
		Estado:          string(a.Estado),
		EstadoCaso:      string(a.EstadoCaso),
		Horas:           a.Horas,
		HorasAcumuladas: a.HorasAcumuladas,
		Observaciones:   make([]observationItem, 0, len(a.Observaciones)),
	}
	if a.FechaCierre != nil {
		it.FechaCierre = a.FechaCierre.UTC().Format(time.RFC3339Nano)
	}
	for _, o := range a.Observaciones {
		it.Observaciones = append(it.Observaciones, observationItem{
			Fecha:      o.Fecha.UTC().Format(time.RFC3339Nano),
			Comentario: o.Comentario,
		})
	}
	return it
}

func fromActivityItem(it activityItem) entities.Activity {
	a := entities.Activity{
		ID:              it.ID,
		Lider:           it.Lider,
		Proyecto:        it.Proyecto,
		Tipificacion:    it.Tipificacion,
		Actividad:       it.Actividad,
		Descripcion:     it.Descripcion,
		FechaCreacion:   parseTime(it.FechaCreacion),
		Estado:          entities.ActivityStatus(it.Estado),
		EstadoCaso:      entities.CaseStatus(it.EstadoCaso),
		Horas:           it.Horas,
		HorasAcumuladas: it.HorasAcumuladas,
		Observaciones:   make([]entities.Observation, 0, len(it.Observaciones)),
	}
	if it.FechaCierre != "" {
		cierre := parseTime(it.FechaCierre)
		a.FechaCierre = &cierre
	}
	for _, o := range it.Observaciones {
		a.Observaciones = append(a.Observaciones, entities.Observation{
			Fecha:      parseTime(o.Fecha),
			Comentario: o.Comentario,
		})
	}
	return a
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
