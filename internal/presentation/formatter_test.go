package presentation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmarchant/codabind/internal/capability"
	"github.com/rmarchant/codabind/internal/coding"
	"github.com/rmarchant/codabind/internal/domain/binding"
	"github.com/rmarchant/codabind/internal/domain/field"
)

func mkBindings(t *testing.T) []*binding.Binding {
	t.Helper()

	factory, err := binding.NewBuilder("full_rlnc").
		Field(field.Binary8).
		Role(binding.RoleFactory).
		Capabilities(capability.NewList(capability.Trace())).
		Constructor(func(int, int) (coding.Factory, error) { return nil, nil }).
		Build()
	require.NoError(t, err)

	encoder, err := binding.NewBuilder("full_rlnc").
		Field(field.Binary8).
		Role(binding.RoleEncoder).
		Capabilities(capability.NewList(capability.Trace())).
		FactoryName(factory.Name()).
		Build()
	require.NoError(t, err)

	return []*binding.Binding{factory, encoder}
}

func TestFromDomainBindings(t *testing.T) {
	dtos := FromDomainBindings(mkBindings(t))

	require.Len(t, dtos, 2)
	require.Equal(t, BindingDTO{
		Name:         "full_rlnc_binary8_factory",
		Stack:        "full_rlnc",
		Field:        "binary8",
		FieldBits:    8,
		Role:         "factory",
		Capabilities: []string{"trace"},
	}, dtos[0])
	require.Equal(t, "full_rlnc_binary8_factory", dtos[1].FactoryName)
}

func TestFormatter_FormatBindings(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(&buf)

	err := formatter.FormatBindings(FromDomainBindings(mkBindings(t)))

	require.NoError(t, err)

	var decoded []BindingDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "full_rlnc_binary8_encoder", decoded[1].Name)
}
