// Package arrowcol exposes feature columns as Apache Arrow arrays so they
// can be handed to Arrow-based consumers without a custom format.
package arrowcol

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/arloliu/featstore/column"
	"github.com/arloliu/featstore/errs"
	"github.com/arloliu/featstore/executor"
	"github.com/arloliu/featstore/format"
)

// MetadataFeatureType is the field metadata key holding the feature values type.
const MetadataFeatureType = "featstore.type"

// DataType returns the Arrow type a column of typ is exported as.
func DataType(typ format.FeatureValuesType) (arrow.DataType, error) {
	switch typ {
	case format.TypeFloat:
		return arrow.PrimitiveTypes.Float32, nil
	case format.TypeQuantizedFloat:
		return arrow.PrimitiveTypes.Uint8, nil
	case format.TypeHashedCategorical, format.TypePerfectHashedCategorical:
		return arrow.PrimitiveTypes.Uint32, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidFeatureType, typ)
	}
}

// FieldName returns the field name of featureID in records built by ToRecord.
func FieldName(featureID uint32) string {
	return "f" + strconv.FormatUint(uint64(featureID), 10)
}

// ToArray materializes h in logical order into a new Arrow array. The
// caller owns the returned array and must Release it.
func ToArray(h column.FeatureValuesHolder, exec executor.Executor, mem memory.Allocator) (arrow.Array, error) {
	switch v := h.(type) {
	case *column.FloatValuesHolder:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		b.AppendValues(v.ExtractValues(exec), nil)

		return b.NewArray(), nil
	case *column.HashedCatValuesHolder:
		b := array.NewUint32Builder(mem)
		defer b.Release()
		b.AppendValues(v.ExtractValues(exec), nil)

		return b.NewArray(), nil
	case column.QuantizedFloatValues:
		b := array.NewUint8Builder(mem)
		defer b.Release()
		b.AppendValues(v.ExtractValues(exec), nil)

		return b.NewArray(), nil
	case column.QuantizedCatValues:
		b := array.NewUint32Builder(mem)
		defer b.Release()
		b.AppendValues(v.ExtractValues(exec), nil)

		return b.NewArray(), nil
	default:
		return nil, fmt.Errorf("%w: cannot export %T", errs.ErrInvalidFeatureType, h)
	}
}

// ToRecord exports every column of c as one record with a field per
// feature, ordered by feature id. The caller must Release the record.
func ToRecord(c *column.Columns, exec executor.Executor, mem memory.Allocator) (arrow.Record, error) {
	ids := c.IDs()
	fields := make([]arrow.Field, 0, len(ids))
	cols := make([]arrow.Array, 0, len(ids))
	defer func() {
		for _, col := range cols {
			col.Release()
		}
	}()

	for _, id := range ids {
		h, _ := c.Get(id)
		dt, err := DataType(h.Type())
		if err != nil {
			return nil, err
		}
		col, err := ToArray(h, exec, mem)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)

		fields = append(fields, arrow.Field{
			Name:     FieldName(id),
			Type:     dt,
			Metadata: arrow.NewMetadata([]string{MetadataFeatureType}, []string{h.Type().String()}),
		})
	}

	schema := arrow.NewSchema(fields, nil)

	return array.NewRecord(schema, cols, int64(c.Size())), nil
}

// MarshalIPC writes rec in the Arrow IPC stream format.
func MarshalIPC(rec arrow.Record, mem memory.Allocator) ([]byte, error) {
	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err := w.Write(rec); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("arrow ipc write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("arrow ipc close: %w", err)
	}

	return buf.Bytes(), nil
}
