package forms

import (
	"fmt"

	"github.com/ClusterLabs/striker-testinput/pkg/testinput"
	"github.com/ClusterLabs/striker-testinput/pkg/validator"
)

const minPasswordLength = 6

// Default returns a registry with every console form.
func Default() *Registry {
	return NewRegistry(
		HostNetworkInit(),
		Server(),
		User(),
		UPS(),
		Fence(),
		MailServer(),
	)
}

func HostNetworkInit() Form {
	return Form{
		ID:    "host-network-init",
		Title: "Host network initialization",
		Build: func() *testinput.Batches {
			return testinput.NewBatches().
				Set("domainName", testinput.BuildDomainBatch("Domain name")).
				Set("hostName", testinput.BuildHostnameBatch("Host name")).
				Set("organizationName", testinput.BuildNotBlankBatch("Organization name")).
				Set("organizationPrefix", testinput.BuildOrganizationPrefixBatch("Prefix")).
				Set("hostNumber", testinput.BuildNumberBatch("Host number", 1, 99)).
				Set("gateway", testinput.BuildIPv4Batch("Gateway")).
				Set("dns", testinput.BuildIPv4CSVBatch("Domain name server(s)")).
				Set("ntp", testinput.BuildIPv4CSVBatch("NTP", testinput.WithRequired(false)))
		},
	}
}

func Server() Form {
	return Form{
		ID:    "server",
		Title: "Provision server",
		Build: func() *testinput.Batches {
			return testinput.NewBatches().
				Set("name", testinput.BuildPeacefulStringBatch("Server name")).
				Set("cpuCores", testinput.BuildNumberBatch("CPU cores", 1, 256)).
				Set("memoryMiB", testinput.BuildNumberBatch("Memory", 64, 1048576,
					testinput.WithDisplayRange("64 MiB", "1 TiB"))).
				Set("storageGroupUUID", testinput.BuildUUIDBatch("Storage group")).
				Set("installISO", testinput.BuildNotBlankBatch("Install ISO"))
		},
	}
}

func User() Form {
	return Form{
		ID:    "user",
		Title: "Manage user",
		Build: func() *testinput.Batches {
			return testinput.NewBatches().
				Set("userName", testinput.BuildPeacefulStringBatch("User name")).
				Set("password", testinput.BuildNotBlankBatch("Password",
					testinput.WithTest(testinput.Test{
						ID:             "length",
						Check:          validator.Length,
						Message:        fmt.Sprintf("Password must be at least %d characters.", minPasswordLength),
						TranslationKey: "validation.min_length",
					}),
					testinput.WithMin(minPasswordLength),
				)).
				Set("email", testinput.BuildEmailBatch("Email", testinput.WithRequired(false)))
		},
	}
}

func UPS() Form {
	return Form{
		ID:    "ups",
		Title: "Manage UPS",
		Build: func() *testinput.Batches {
			return testinput.NewBatches().
				Set("name", testinput.BuildPeacefulStringBatch("UPS name")).
				Set("ipAddress", testinput.BuildIPv4Batch("IP address")).
				Set("agent", testinput.BuildNotBlankBatch("UPS type"))
		},
	}
}

func Fence() Form {
	return Form{
		ID:    "fence",
		Title: "Manage fence device",
		Build: func() *testinput.Batches {
			return testinput.NewBatches().
				Set("name", testinput.BuildPeacefulStringBatch("Fence device name")).
				Set("ipAddress", testinput.BuildIPv4Batch("IP address")).
				Set("agent", testinput.BuildNotBlankBatch("Fence device type")).
				Set("macAddress", testinput.BuildMACBatch("MAC address", testinput.WithRequired(false)))
		},
	}
}

func MailServer() Form {
	return Form{
		ID:    "mail-server",
		Title: "Manage mail server",
		Build: func() *testinput.Batches {
			return testinput.NewBatches().
				Set("address", testinput.BuildDomainBatch("Server address")).
				Set("port", testinput.BuildNumberBatch("Server port", 1, 65535)).
				Set("username", testinput.BuildPeacefulStringBatch("Login username")).
				Set("heloDomain", testinput.BuildDomainBatch("HELO domain"))
		},
	}
}
