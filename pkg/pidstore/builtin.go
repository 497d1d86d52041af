package pidstore

import (
	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// E1.20 parameter IDs for the built-in catalog.
const (
	// PIDCommsStatus is COMMS_STATUS (communication error counters).
	PIDCommsStatus uint16 = 0x0015

	// PIDStatusMessages is STATUS_MESSAGES (queued status reports).
	PIDStatusMessages uint16 = 0x0030

	// PIDProxiedDevices is PROXIED_DEVICES (devices behind a proxy).
	PIDProxiedDevices uint16 = 0x0034

	// PIDDeviceInfo is DEVICE_INFO (core device identity block).
	PIDDeviceInfo uint16 = 0x0060

	// PIDDeviceLabel is DEVICE_LABEL (user-set device name).
	PIDDeviceLabel uint16 = 0x0082

	// PIDLanguage is LANGUAGE (ISO 639-1 display language).
	PIDLanguage uint16 = 0x00B0

	// PIDDMXPersonality is DMX_PERSONALITY (active personality index).
	PIDDMXPersonality uint16 = 0x00E0

	// PIDDMXStartAddress is DMX_START_ADDRESS (first DMX slot).
	PIDDMXStartAddress uint16 = 0x00F0

	// PIDSensorDefinition is SENSOR_DEFINITION (one sensor's type,
	// unit, and ranges).
	PIDSensorDefinition uint16 = 0x0200

	// PIDSensorOffset is SENSOR_OFFSET (vendor calibration offsets,
	// one group instance per sensor).
	PIDSensorOffset uint16 = 0x0360

	// PIDLampHours is LAMP_HOURS (accumulated lamp runtime).
	PIDLampHours uint16 = 0x0401

	// PIDDisplayLevel is DISPLAY_LEVEL (front panel brightness).
	PIDDisplayLevel uint16 = 0x0502

	// PIDIdentifyDevice is IDENTIFY_DEVICE (identify mode on/off).
	PIDIdentifyDevice uint16 = 0x1000
)

// Builtin returns a store preloaded with the built-in E1.20 catalog.
func Builtin() *Store {
	s := NewStore()

	s.Add(&Parameter{
		PID:         PIDCommsStatus,
		Name:        "COMMS_STATUS",
		Description: "Communication status error counters",
		Descriptor: messaging.NewDescriptor("COMMS_STATUS", []messaging.FieldDescriptor{
			messaging.NewUInt16FieldDescriptor("shortMessage"),
			messaging.NewUInt16FieldDescriptor("lengthMismatch"),
			messaging.NewUInt16FieldDescriptor("checksumFail"),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDStatusMessages,
		Name:        "STATUS_MESSAGES",
		Description: "Queued status messages",
		Descriptor: messaging.NewDescriptor("STATUS_MESSAGES", []messaging.FieldDescriptor{
			messaging.NewGroupFieldDescriptor("message", []messaging.FieldDescriptor{
				messaging.NewUInt16FieldDescriptor("subDevice"),
				messaging.NewUInt8FieldDescriptor("statusType"),
				messaging.NewUInt16FieldDescriptor("messageId"),
				messaging.NewInt16FieldDescriptor("data1"),
				messaging.NewInt16FieldDescriptor("data2"),
			}, 0, 25),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDProxiedDevices,
		Name:        "PROXIED_DEVICES",
		Description: "Devices represented by a proxy",
		Descriptor: messaging.NewDescriptor("PROXIED_DEVICES", []messaging.FieldDescriptor{
			messaging.NewGroupFieldDescriptor("device", []messaging.FieldDescriptor{
				messaging.NewUInt16FieldDescriptor("manufacturerId"),
				messaging.NewUInt32FieldDescriptor("deviceId"),
			}, 0, 38),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDDeviceInfo,
		Name:        "DEVICE_INFO",
		Description: "Core device identity and configuration",
		Descriptor: messaging.NewDescriptor("DEVICE_INFO", []messaging.FieldDescriptor{
			messaging.NewUInt16FieldDescriptor("protocolVersion"),
			messaging.NewUInt16FieldDescriptor("deviceModelId"),
			messaging.NewUInt16FieldDescriptor("productCategory"),
			messaging.NewUInt32FieldDescriptor("softwareVersionId"),
			messaging.NewUInt16FieldDescriptor("dmxFootprint"),
			messaging.NewUInt8FieldDescriptor("currentPersonality"),
			messaging.NewUInt8FieldDescriptor("personalityCount"),
			messaging.NewUInt16FieldDescriptor("dmxStartAddress"),
			messaging.NewUInt16FieldDescriptor("subDeviceCount"),
			messaging.NewUInt8FieldDescriptor("sensorCount"),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDDeviceLabel,
		Name:        "DEVICE_LABEL",
		Description: "User-settable device label",
		Descriptor: messaging.NewDescriptor("DEVICE_LABEL", []messaging.FieldDescriptor{
			messaging.NewStringFieldDescriptor("label", 0, 32),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDLanguage,
		Name:        "LANGUAGE",
		Description: "Display language (ISO 639-1 code)",
		Descriptor: messaging.NewDescriptor("LANGUAGE", []messaging.FieldDescriptor{
			messaging.NewStringFieldDescriptor("language", 2, 2),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDDMXPersonality,
		Name:        "DMX_PERSONALITY",
		Description: "Active DMX personality",
		Descriptor: messaging.NewDescriptor("DMX_PERSONALITY", []messaging.FieldDescriptor{
			messaging.NewUInt8FieldDescriptor("personality"),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDDMXStartAddress,
		Name:        "DMX_START_ADDRESS",
		Description: "First DMX512 slot the device responds to",
		Descriptor: messaging.NewDescriptor("DMX_START_ADDRESS", []messaging.FieldDescriptor{
			messaging.NewUInt16FieldDescriptor("dmxAddress"),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDSensorDefinition,
		Name:        "SENSOR_DEFINITION",
		Description: "Type, unit, and ranges of one sensor",
		Descriptor: messaging.NewDescriptor("SENSOR_DEFINITION", []messaging.FieldDescriptor{
			messaging.NewUInt8FieldDescriptor("sensorNumber"),
			messaging.NewUInt8FieldDescriptor("type"),
			messaging.NewUInt8FieldDescriptor("unit"),
			messaging.NewUInt8FieldDescriptor("prefix"),
			messaging.NewInt16FieldDescriptor("rangeMin"),
			messaging.NewInt16FieldDescriptor("rangeMax"),
			messaging.NewInt16FieldDescriptor("normalMin"),
			messaging.NewInt16FieldDescriptor("normalMax"),
			messaging.NewUInt8FieldDescriptor("recordedSupport"),
			messaging.NewStringFieldDescriptor("description", 0, 32),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDSensorOffset,
		Name:        "SENSOR_OFFSET",
		Description: "Per-sensor calibration offsets",
		Descriptor: messaging.NewDescriptor("SENSOR_OFFSET", []messaging.FieldDescriptor{
			messaging.NewGroupFieldDescriptor("sensor", []messaging.FieldDescriptor{
				messaging.NewUInt8FieldDescriptor("sensorNumber"),
				messaging.NewInt16FieldDescriptor("offset"),
			}, 1, 255),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDLampHours,
		Name:        "LAMP_HOURS",
		Description: "Accumulated lamp runtime in hours",
		Descriptor: messaging.NewDescriptor("LAMP_HOURS", []messaging.FieldDescriptor{
			messaging.NewUInt32FieldDescriptor("lampHours"),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDDisplayLevel,
		Name:        "DISPLAY_LEVEL",
		Description: "Front panel display brightness",
		Descriptor: messaging.NewDescriptor("DISPLAY_LEVEL", []messaging.FieldDescriptor{
			messaging.NewUInt8FieldDescriptor("level"),
		}),
	})

	s.Add(&Parameter{
		PID:         PIDIdentifyDevice,
		Name:        "IDENTIFY_DEVICE",
		Description: "Identify mode on or off",
		Descriptor: messaging.NewDescriptor("IDENTIFY_DEVICE", []messaging.FieldDescriptor{
			messaging.NewBoolFieldDescriptor("identify"),
		}),
	})

	return s
}
