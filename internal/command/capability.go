package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Capability is one permission bit a command can require from the caller.
// Values alias the platform's permission constants, so a member's permission
// bitmask is directly a set of capabilities.
type Capability int64

const (
	CapCreateInvite    = Capability(discordgo.PermissionCreateInstantInvite)
	CapKickMembers     = Capability(discordgo.PermissionKickMembers)
	CapBanMembers      = Capability(discordgo.PermissionBanMembers)
	CapAdministrator   = Capability(discordgo.PermissionAdministrator)
	CapManageChannels  = Capability(discordgo.PermissionManageChannels)
	CapManageServer    = Capability(discordgo.PermissionManageGuild)
	CapViewAuditLogs   = Capability(discordgo.PermissionViewAuditLogs)
	CapSendMessages    = Capability(discordgo.PermissionSendMessages)
	CapManageMessages  = Capability(discordgo.PermissionManageMessages)
	CapEmbedLinks      = Capability(discordgo.PermissionEmbedLinks)
	CapAttachFiles     = Capability(discordgo.PermissionAttachFiles)
	CapMentionEveryone = Capability(discordgo.PermissionMentionEveryone)
	CapChangeNickname  = Capability(discordgo.PermissionChangeNickname)
	CapManageNicknames = Capability(discordgo.PermissionManageNicknames)
	CapManageRoles     = Capability(discordgo.PermissionManageRoles)
	CapManageWebhooks  = Capability(discordgo.PermissionManageWebhooks)
	CapModerateMembers = Capability(discordgo.PermissionModerateMembers)
)

var capabilityNames = map[Capability]string{
	CapCreateInvite:    "Create Invite",
	CapKickMembers:     "Kick Members",
	CapBanMembers:      "Ban Members",
	CapAdministrator:   "Administrator",
	CapManageChannels:  "Manage Channels",
	CapManageServer:    "Manage Server",
	CapViewAuditLogs:   "View Audit Logs",
	CapSendMessages:    "Send Messages",
	CapManageMessages:  "Manage Messages",
	CapEmbedLinks:      "Embed Links",
	CapAttachFiles:     "Attach Files",
	CapMentionEveryone: "Mention Everyone",
	CapChangeNickname:  "Change Nickname",
	CapManageNicknames: "Manage Nicknames",
	CapManageRoles:     "Manage Roles",
	CapManageWebhooks:  "Manage Webhooks",
	CapModerateMembers: "Moderate Members",
}

// String returns the human-readable permission name, or the raw bit in hex
// for values outside the map.
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", int64(c))
}

// Has reports whether every bit of other is present in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}
