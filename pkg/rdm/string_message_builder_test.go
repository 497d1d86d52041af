package rdm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
	"github.com/rdm-protocol/rdm-go/pkg/rdm"
)

// buildMessage runs a fresh builder over the descriptor, mirroring the
// way callers drive a build: Accept then GetMessage.
func buildMessage(t *testing.T, descriptor *messaging.Descriptor, inputs []string) *messaging.Message {
	t.Helper()
	builder := rdm.NewStringMessageBuilder(inputs)
	descriptor.Accept(builder)
	return builder.GetMessage()
}

// messageToString renders a message with the canonical printer.
func messageToString(message *messaging.Message) string {
	printer := messaging.NewMessagePrinter()
	message.Accept(printer)
	return printer.AsString()
}

// TestSimpleBuilder covers the full scalar kind set end to end.
func TestSimpleBuilder(t *testing.T) {
	descriptor := messaging.NewDescriptor("Test Descriptor", []messaging.FieldDescriptor{
		messaging.NewBoolFieldDescriptor("bool1"),
		messaging.NewBoolFieldDescriptor("bool2"),
		messaging.NewBoolFieldDescriptor("bool3"),
		messaging.NewBoolFieldDescriptor("bool4"),
		messaging.NewBoolFieldDescriptor("bool5"),
		messaging.NewBoolFieldDescriptor("bool6"),
		messaging.NewUInt8FieldDescriptor("uint8"),
		messaging.NewUInt16FieldDescriptor("uint16"),
		messaging.NewUInt32FieldDescriptor("uint32"),
		messaging.NewInt8FieldDescriptor("int8"),
		messaging.NewInt16FieldDescriptor("int16"),
		messaging.NewInt32FieldDescriptor("int32"),
		messaging.NewStringFieldDescriptor("string", 0, 32),
	})

	inputs := []string{
		"true", "false", "1", "0", "TRUE", "FALSE",
		"255", "300", "66000",
		"-128", "-300", "-66000",
		"foo",
	}

	message := buildMessage(t, descriptor, inputs)
	require.NotNil(t, message)
	assert.Equal(t, 13, message.FieldCount())

	want := "bool1: true\nbool2: false\nbool3: true\nbool4: false\nbool5: true\n" +
		"bool6: false\nuint8: 255\nuint16: 300\nuint32: 66000\n" +
		"int8: -128\nint16: -300\nint32: -66000\nstring: foo\n"
	assert.Equal(t, want, messageToString(message))
}

func TestBuilderWithGroups(t *testing.T) {
	descriptor := messaging.NewDescriptor("Test Descriptor", []messaging.FieldDescriptor{
		messaging.NewGroupFieldDescriptor("group", []messaging.FieldDescriptor{
			messaging.NewBoolFieldDescriptor("bool"),
			messaging.NewUInt8FieldDescriptor("uint8"),
		}, 0, 5),
	})

	t.Run("ZeroInstances", func(t *testing.T) {
		message := buildMessage(t, descriptor, nil)
		require.NotNil(t, message)
		assert.Equal(t, 1, message.FieldCount())
		assert.Equal(t, "", messageToString(message))
	})

	t.Run("OneInstance", func(t *testing.T) {
		message := buildMessage(t, descriptor, []string{"true", "10"})
		require.NotNil(t, message)
		assert.Equal(t, 1, message.FieldCount())
		assert.Equal(t, "group {\n  bool: true\n  uint8: 10\n}\n", messageToString(message))
	})

	t.Run("ThreeInstances", func(t *testing.T) {
		message := buildMessage(t, descriptor,
			[]string{"true", "10", "true", "42", "false", "240"})
		require.NotNil(t, message)

		// A repeated group is one top-level field; repetition lives in
		// the instance list.
		assert.Equal(t, 1, message.FieldCount())

		group, ok := message.Fields()[0].(*messaging.GroupMessageField)
		require.True(t, ok)
		assert.Equal(t, 3, group.InstanceCount())

		want := "group {\n  bool: true\n  uint8: 10\n}\n" +
			"group {\n  bool: true\n  uint8: 42\n}\n" +
			"group {\n  bool: false\n  uint8: 240\n}\n"
		assert.Equal(t, want, messageToString(message))
	})
}

func TestGroupRepeatBounds(t *testing.T) {
	newDescriptor := func(min, max int) *messaging.Descriptor {
		return messaging.NewDescriptor("bounds", []messaging.FieldDescriptor{
			messaging.NewGroupFieldDescriptor("group", []messaging.FieldDescriptor{
				messaging.NewUInt8FieldDescriptor("value"),
			}, min, max),
		})
	}

	t.Run("StopsAtMax", func(t *testing.T) {
		// Tokens for three passes, but the schema allows two.
		message := buildMessage(t, newDescriptor(0, 2), []string{"1", "2", "3"})
		require.NotNil(t, message)

		group := message.Fields()[0].(*messaging.GroupMessageField)
		assert.Equal(t, 2, group.InstanceCount())
	})

	t.Run("ExactlyMin", func(t *testing.T) {
		message := buildMessage(t, newDescriptor(2, 4), []string{"1", "2"})
		require.NotNil(t, message)

		group := message.Fields()[0].(*messaging.GroupMessageField)
		assert.Equal(t, 2, group.InstanceCount())
	})

	t.Run("BelowMin", func(t *testing.T) {
		builder := rdm.NewStringMessageBuilder([]string{"1"})
		newDescriptor(2, 4).Accept(builder)

		require.Nil(t, builder.GetMessage())

		var fieldErr *rdm.FieldError
		require.ErrorAs(t, builder.Err(), &fieldErr)
		assert.Equal(t, "group", fieldErr.Field)
		assert.Equal(t, rdm.InputExhausted, fieldErr.Kind)
	})
}

func TestNestedGroups(t *testing.T) {
	inner := messaging.NewGroupFieldDescriptor("inner", []messaging.FieldDescriptor{
		messaging.NewUInt16FieldDescriptor("value"),
	}, 1, 1)
	descriptor := messaging.NewDescriptor("nested", []messaging.FieldDescriptor{
		messaging.NewGroupFieldDescriptor("outer", []messaging.FieldDescriptor{
			messaging.NewBoolFieldDescriptor("flag"),
			inner,
		}, 0, 3),
	})

	message := buildMessage(t, descriptor, []string{"true", "300", "false", "400"})
	require.NotNil(t, message)

	want := "outer {\n" +
		"  flag: true\n" +
		"  inner {\n" +
		"    value: 300\n" +
		"  }\n" +
		"}\n" +
		"outer {\n" +
		"  flag: false\n" +
		"  inner {\n" +
		"    value: 400\n" +
		"  }\n" +
		"}\n"
	assert.Equal(t, want, messageToString(message))
}

func TestBoolConversion(t *testing.T) {
	descriptor := messaging.NewDescriptor("bool", []messaging.FieldDescriptor{
		messaging.NewBoolFieldDescriptor("bool1"),
	})

	accepted := map[string]string{
		"true":  "bool1: true\n",
		"TRUE":  "bool1: true\n",
		"1":     "bool1: true\n",
		"false": "bool1: false\n",
		"FALSE": "bool1: false\n",
		"0":     "bool1: false\n",
	}
	for token, want := range accepted {
		t.Run(token, func(t *testing.T) {
			message := buildMessage(t, descriptor, []string{token})
			require.NotNil(t, message)
			assert.Equal(t, want, messageToString(message))
		})
	}

	for _, token := range []string{"foo", "2", "", "truee", "-1"} {
		t.Run("reject "+token, func(t *testing.T) {
			builder := rdm.NewStringMessageBuilder([]string{token})
			descriptor.Accept(builder)

			require.Nil(t, builder.GetMessage())

			var fieldErr *rdm.FieldError
			require.ErrorAs(t, builder.Err(), &fieldErr)
			assert.Equal(t, "bool1", fieldErr.Field)
			assert.Equal(t, rdm.ParseError, fieldErr.Kind)
		})
	}
}

func TestUIntBounds(t *testing.T) {
	tests := []struct {
		name      string
		field     messaging.FieldDescriptor
		max       string
		justOver  string
	}{
		{"uint8", messaging.NewUInt8FieldDescriptor("u"), "255", "256"},
		{"uint16", messaging.NewUInt16FieldDescriptor("u"), "65535", "65536"},
		{"uint32", messaging.NewUInt32FieldDescriptor("u"), "4294967295", "4294967296"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor := messaging.NewDescriptor(tt.name, []messaging.FieldDescriptor{tt.field})

			require.NotNil(t, buildMessage(t, descriptor, []string{"0"}))
			require.NotNil(t, buildMessage(t, descriptor, []string{tt.max}))

			for _, token := range []string{tt.justOver, "-1"} {
				builder := rdm.NewStringMessageBuilder([]string{token})
				descriptor.Accept(builder)
				require.Nil(t, builder.GetMessage(), "token %q", token)

				var fieldErr *rdm.FieldError
				require.ErrorAs(t, builder.Err(), &fieldErr)
				assert.Equal(t, rdm.RangeError, fieldErr.Kind, "token %q", token)
			}

			builder := rdm.NewStringMessageBuilder([]string{"a"})
			descriptor.Accept(builder)
			require.Nil(t, builder.GetMessage())

			var fieldErr *rdm.FieldError
			require.ErrorAs(t, builder.Err(), &fieldErr)
			assert.Equal(t, rdm.ParseError, fieldErr.Kind)
		})
	}
}

func TestIntBounds(t *testing.T) {
	tests := []struct {
		name      string
		field     messaging.FieldDescriptor
		min       string
		max       string
		underMin  string
		overMax   string
	}{
		{"int8", messaging.NewInt8FieldDescriptor("i"), "-128", "127", "-129", "128"},
		{"int16", messaging.NewInt16FieldDescriptor("i"), "-32768", "32767", "-32769", "32768"},
		{"int32", messaging.NewInt32FieldDescriptor("i"), "-2147483648", "2147483647", "-2147483649", "2147483648"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor := messaging.NewDescriptor(tt.name, []messaging.FieldDescriptor{tt.field})

			require.NotNil(t, buildMessage(t, descriptor, []string{tt.min}))
			require.NotNil(t, buildMessage(t, descriptor, []string{tt.max}))

			for _, token := range []string{tt.underMin, tt.overMax} {
				builder := rdm.NewStringMessageBuilder([]string{token})
				descriptor.Accept(builder)
				require.Nil(t, builder.GetMessage(), "token %q", token)

				var fieldErr *rdm.FieldError
				require.ErrorAs(t, builder.Err(), &fieldErr)
				assert.Equal(t, rdm.RangeError, fieldErr.Kind, "token %q", token)
			}

			builder := rdm.NewStringMessageBuilder([]string{"a"})
			descriptor.Accept(builder)
			require.Nil(t, builder.GetMessage())

			var fieldErr *rdm.FieldError
			require.ErrorAs(t, builder.Err(), &fieldErr)
			assert.Equal(t, rdm.ParseError, fieldErr.Kind)
		})
	}
}

func TestStringLengthBounds(t *testing.T) {
	descriptor := messaging.NewDescriptor("string", []messaging.FieldDescriptor{
		messaging.NewStringFieldDescriptor("string", 3, 10),
	})

	t.Run("WithinBounds", func(t *testing.T) {
		message := buildMessage(t, descriptor, []string{"foo"})
		require.NotNil(t, message)
		assert.Equal(t, "string: foo\n", messageToString(message))
	})

	for name, token := range map[string]string{
		"TooLong":  "this is a very long string",
		"TooShort": "ab",
	} {
		t.Run(name, func(t *testing.T) {
			builder := rdm.NewStringMessageBuilder([]string{token})
			descriptor.Accept(builder)

			require.Nil(t, builder.GetMessage())

			var fieldErr *rdm.FieldError
			require.ErrorAs(t, builder.Err(), &fieldErr)
			assert.Equal(t, "string", fieldErr.Field)
			assert.Equal(t, rdm.LengthError, fieldErr.Kind)
		})
	}
}

func TestInputExhaustedScalar(t *testing.T) {
	descriptor := messaging.NewDescriptor("short", []messaging.FieldDescriptor{
		messaging.NewUInt8FieldDescriptor("first"),
		messaging.NewUInt8FieldDescriptor("second"),
	})

	builder := rdm.NewStringMessageBuilder([]string{"1"})
	descriptor.Accept(builder)

	require.Nil(t, builder.GetMessage())

	var fieldErr *rdm.FieldError
	require.ErrorAs(t, builder.Err(), &fieldErr)
	assert.Equal(t, "second", fieldErr.Field)
	assert.Equal(t, rdm.InputExhausted, fieldErr.Kind)
}

// TestFirstFailureWins checks the sticky error slot: later failures
// must not replace the first, and later successes must not clear it.
func TestFirstFailureWins(t *testing.T) {
	descriptor := messaging.NewDescriptor("sticky", []messaging.FieldDescriptor{
		messaging.NewUInt8FieldDescriptor("broken"),
		messaging.NewUInt8FieldDescriptor("alsoBroken"),
		messaging.NewBoolFieldDescriptor("fine"),
	})

	builder := rdm.NewStringMessageBuilder([]string{"999", "998", "true"})
	descriptor.Accept(builder)

	require.Nil(t, builder.GetMessage())

	var fieldErr *rdm.FieldError
	require.ErrorAs(t, builder.Err(), &fieldErr)
	assert.Equal(t, "broken", fieldErr.Field)
	assert.Contains(t, builder.GetError(), "broken")
}

func TestGroupFailureInsidePass(t *testing.T) {
	descriptor := messaging.NewDescriptor("group", []messaging.FieldDescriptor{
		messaging.NewGroupFieldDescriptor("group", []messaging.FieldDescriptor{
			messaging.NewBoolFieldDescriptor("bool"),
			messaging.NewUInt8FieldDescriptor("uint8"),
		}, 0, 5),
	})

	// Second pass has a bad uint8 token.
	builder := rdm.NewStringMessageBuilder([]string{"true", "10", "true", "banana"})
	descriptor.Accept(builder)

	require.Nil(t, builder.GetMessage())

	var fieldErr *rdm.FieldError
	require.ErrorAs(t, builder.Err(), &fieldErr)
	assert.Equal(t, "uint8", fieldErr.Field)
	assert.Equal(t, rdm.ParseError, fieldErr.Kind)
}

func TestBuilderSingleUse(t *testing.T) {
	descriptor := messaging.NewDescriptor("once", []messaging.FieldDescriptor{
		messaging.NewBoolFieldDescriptor("flag"),
	})

	builder := rdm.NewStringMessageBuilder([]string{"true"})
	descriptor.Accept(builder)

	require.NotNil(t, builder.GetMessage())
	assert.Nil(t, builder.GetMessage(), "second retrieval must not return the tree again")
}

func TestGetMessageWithoutTraversal(t *testing.T) {
	builder := rdm.NewStringMessageBuilder([]string{"true"})
	assert.Nil(t, builder.GetMessage())
	assert.Empty(t, builder.GetError())
	assert.NoError(t, builder.Err())
}

func TestBuildMessageHelper(t *testing.T) {
	descriptor := messaging.NewDescriptor("helper", []messaging.FieldDescriptor{
		messaging.NewUInt16FieldDescriptor("address"),
	})

	t.Run("Success", func(t *testing.T) {
		message, err := rdm.BuildMessage(descriptor, []string{"512"})
		require.NoError(t, err)
		assert.Equal(t, "address: 512\n", messageToString(message))
	})

	t.Run("Failure", func(t *testing.T) {
		message, err := rdm.BuildMessage(descriptor, []string{"70000"})
		assert.Nil(t, message)

		var fieldErr *rdm.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "address", fieldErr.Field)
		assert.Equal(t, rdm.RangeError, fieldErr.Kind)
	})
}
