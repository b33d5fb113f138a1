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

const defaultUsersTableName = "usuarios"

type userItem struct {
	Usuario      string `dynamodbav:"usuario"`
	Nombre       string `dynamodbav:"nombre"`
	PasswordHash string `dynamodbav:"password_hash"`
	Rol          string `dynamodbav:"rol"`
}

// UserDynamoRepository resolves users from DynamoDB for login.
//
// Table requirements:
//   - PK: usuario (string)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByUsername(ctx context.Context, usuario string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"usuario": &types.AttributeValueMemberS{Value: usuario},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		Usuario:      it.Usuario,
		Nombre:       it.Nombre,
		PasswordHash: it.PasswordHash,
		Rol:          it.Rol,
	}, nil
}
