package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type record = map[string]types.AttributeValue

// fakeDynamo keeps tables in memory and understands the handful of expressions the
// repositories send.
type fakeDynamo struct {
	mu           sync.Mutex
	tables       map[string]map[string]record
	pageSize     int
	queryCalls   int
	transactErr  error
	lastTransact *dynamodb.TransactWriteItemsInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]record{}}
}

func (f *fakeDynamo) table(name string) map[string]record {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]record{}
		f.tables[name] = t
	}
	return t
}

func idOf(r record) string {
	if s, ok := r["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func versionOf(r record) (int64, bool) {
	n, ok := r["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, false
	}
	v, _ := strconv.ParseInt(n.Value, 10, 64)
	return v, true
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	existing, exists := t[idOf(in.Item)]
	switch cond := aws.ToString(in.ConditionExpression); cond {
	case conditionNew:
		if exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	case conditionVersion, conditionFirstVersion:
		want, _ := strconv.ParseInt(in.ExpressionAttributeValues[":version"].(*types.AttributeValueMemberN).Value, 10, 64)
		ok := exists
		if ok {
			stored, has := versionOf(existing)
			ok = (has && stored == want) || (!has && cond == conditionFirstVersion)
		}
		if !ok {
			cfe := &types.ConditionalCheckFailedException{}
			if exists && in.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld {
				cfe.Item = existing
			}
			return nil, cfe
		}
	}
	t[idOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queryCalls++
	attr := in.ExpressionAttributeNames["#k"]
	want := in.ExpressionAttributeValues[":v"].(*types.AttributeValueMemberS).Value

	var matches []record
	for _, r := range f.table(aws.ToString(in.TableName)) {
		if v, ok := r[attr].(*types.AttributeValueMemberS); ok && v.Value == want {
			matches = append(matches, r)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return idOf(matches[i]) < idOf(matches[j]) })

	start := 0
	if in.ExclusiveStartKey != nil {
		last := idOf(in.ExclusiveStartKey)
		for start < len(matches) && idOf(matches[start]) <= last {
			start++
		}
	}
	matches = matches[start:]
	out := &dynamodb.QueryOutput{Items: matches}
	if f.pageSize > 0 && len(matches) > f.pageSize {
		out.Items = matches[:f.pageSize]
		out.LastEvaluatedKey = record{"id": matches[f.pageSize-1]["id"]}
	}
	return out, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTransact = in
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	for _, item := range in.TransactItems {
		switch {
		case item.Update != nil:
			u := item.Update
			r := f.table(aws.ToString(u.TableName))[idOf(u.Key)]
			current, _ := strconv.Atoi(r["current_stock"].(*types.AttributeValueMemberN).Value)
			delta, _ := strconv.Atoi(u.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN).Value)
			r["current_stock"] = &types.AttributeValueMemberN{Value: strconv.Itoa(current + delta)}
		case item.Put != nil:
			f.table(aws.ToString(item.Put.TableName))[idOf(item.Put.Item)] = item.Put.Item
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
