/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  scan.go - Recorre un medi sector a sector buscant imatges de
 *            boot. Les imatges eGON es descodifiquen amb el seu propi
 *            comptador de sectors, de manera que una imatge no es
 *            confon amb el contingut de la següent.
 *
 */

package imgs;

import (
  "fmt"
  "io"
  "os"

  "github.com/adriagipas/sunxifw/egon"
  "github.com/adriagipas/sunxifw/utils"
)


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

// Recorre el fitxer sector a sector. En mode verbose cada imatge eGON
// trobada es comprova i s'imprimeix l'informe complet; si no, sols
// se'n reporta la posició i la grandària. Una imatge que no es pot
// descodificar es reporta i l'escaneig continua en el sector següent.
func ScanFile(

  file_name string,
  file      io.Writer,
  prefix    string,
  verbose   bool,

) error {

  // Obté informació del fitxer
  f,err := os.Open ( file_name )
  if err != nil { return err }
  info,err := f.Stat ()
  if err != nil { f.Close (); return err }
  size := info.Size ()

  // Recorre els sectors
  var mem [egon.SECTOR_SIZE]byte
  sector := mem[:]
  nimages := 0
  for off := int64(0); off+egon.SECTOR_SIZE <= size; {
    if _,err := f.ReadAt ( sector, off ); err != nil {
      f.Close ()
      return err
    }
    var advance int64 = 1
    if is_egon_magic ( sector ) {
      advance= scan_egon ( f, sector, off, file, prefix, verbose )
      nimages++
    } else if is_uboot_magic ( sector ) {
      advance= scan_uboot ( sector, off, file, prefix )
      nimages++
    }
    off+= advance*egon.SECTOR_SIZE
  }
  if nimages == 0 {
    fmt.Fprintf ( file, "%sNo boot images found.\n", prefix )
  }

  // Tanca
  f.Close ()

  return nil

} // end ScanFile


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

// Torna el nombre de sectors que cal avançar.
func scan_egon(

  f       *os.File,
  sector  []byte,
  off     int64,
  file    io.Writer,
  prefix  string,
  verbose bool,

) int64 {

  fmt.Fprintf ( file, "%seGON image at sector %d:\n",
    prefix, off/egon.SECTOR_SIZE )

  if verbose {
    if _,err := f.Seek ( off+egon.SECTOR_SIZE, 0 ); err != nil {
      utils.Warning ( "unable to seek in '%s': %v", f.Name (), err )
      return 1
    }
    sectors,err := egon.OutputBoot0Info ( sector, f, file,
      prefix+"  ", true )
    if err != nil {
      // L'informe ja conté el diagnòstic; es continua en el sector
      // següent.
      return 1
    }
    return int64(sectors)+1
  }

  // En mode no verbose sols es descodifica la capçalera per saber on
  // acaba la imatge.
  header,err := egon.ReadHeader ( sector, file )
  if err != nil { return 1 }
  fmt.Fprintf ( file, "%s  %s, %dkB\n", prefix,
    egon_type_str ( header ), header.Filesize>>10 )

  return int64(header.SectorCount ())

} // end scan_egon


func scan_uboot(

  sector []byte,
  off    int64,
  file   io.Writer,
  prefix string,

) int64 {

  header := _UBootHeader{}
  header.read ( sector )
  fmt.Fprintf ( file, "%sU-Boot legacy image at sector %d:\n",
    prefix, off/egon.SECTOR_SIZE )
  fmt.Fprintf ( file, "%s  %s (%s), %s\n", prefix, header.name,
    uboot_type2str ( header.itype ),
    utils.NumBytesToStr ( uint64(header.size) ))

  // Avança capçalera i dades, arrodonint al sector
  total := int64(UBOOT_HEADER_SIZE) + int64(header.size)
  sectors := (total+egon.SECTOR_SIZE-1)/egon.SECTOR_SIZE
  if sectors < 1 { sectors= 1 }

  return sectors

} // end scan_uboot
